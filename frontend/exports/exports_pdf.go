package exports

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"time"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
	"github.com/jung-kurt/gofpdf"

	"fisiovida/infrastructure/directory"
)

// renderUserSheetPDF lays out the directory as a printable contact sheet,
// three user cards per A4 page, each with a Code128 badge of the record id.
func renderUserSheetPDF(records []directory.UserRecord, printedAt time.Time) ([]byte, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("nenhum usuário para exportar")
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Usuários FisioVida", false)
	pdf.SetAutoPageBreak(false, 0)

	pageW, pageH := 210.0, 297.0
	margin := 12.0
	cardsPerPage := 3
	cardW := pageW - (2 * margin)
	cardH := (pageH - (2 * margin) - 16) / float64(cardsPerPage)

	for i, rec := range records {
		slot := i % cardsPerPage
		if slot == 0 {
			pdf.AddPage()
			pdf.SetFont("Helvetica", "B", 14)
			pdf.SetXY(margin, margin)
			pdf.CellFormat(cardW, 8, "FisioVida - Diretório de Usuários", "", 0, "L", false, 0, "")
			pdf.SetFont("Helvetica", "", 9)
			pdf.SetXY(margin, margin+8)
			pdf.CellFormat(cardW, 5, "Emitido em "+printedAt.Format("02/01/2006 15:04"), "", 0, "L", false, 0, "")
		}

		y := margin + 16 + float64(slot)*cardH
		if err := addUserCard(pdf, rec, margin, y, cardW, cardH-6, i); err != nil {
			return nil, err
		}
	}

	var out bytes.Buffer
	if err := pdf.Output(&out); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func addUserCard(pdf *gofpdf.Fpdf, rec directory.UserRecord, x, y, w, h float64, index int) error {
	barcodeValue := badgeValue(rec.ID)
	barcodePNG, err := renderCode128PNG(barcodeValue, 900, 200)
	if err != nil {
		return err
	}

	pdf.SetLineWidth(0.35)
	pdf.Rect(x, y, w, h, "")

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(80, 80, 80)
	pdf.SetXY(x+w-40, y+2)
	pdf.CellFormat(38, 5, fmt.Sprintf("ID %d", rec.ID), "", 0, "R", false, 0, "")

	pdf.SetTextColor(0, 0, 0)
	nameFont := fitFontSizeForWidth(pdf, "Helvetica", "B", 22, 12, rec.FullName, w*0.6-8)
	pdf.SetFont("Helvetica", "B", nameFont)
	pdf.SetXY(x+4, y+6)
	pdf.CellFormat(w*0.6-8, 10, rec.FullName, "", 0, "L", false, 0, "")

	phone := rec.Phone
	if phone == "" {
		phone = "-"
	}
	pdf.SetFont("Helvetica", "", 11)
	pdf.SetXY(x+4, y+18)
	pdf.CellFormat(w*0.6-8, 6, "Email: "+rec.Email, "", 0, "L", false, 0, "")
	pdf.SetXY(x+4, y+25)
	pdf.CellFormat(w*0.6-8, 6, "Telefone: "+phone, "", 0, "L", false, 0, "")

	opt := gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: false}
	imageName := fmt.Sprintf("user-badge-%d-%d", rec.ID, index)
	pdf.RegisterImageOptionsReader(imageName, opt, bytes.NewReader(barcodePNG))
	barcodeX := x + w*0.62
	barcodeY := y + 8
	barcodeW := w*0.38 - 8
	barcodeH := h - 24
	if barcodeH < 14 {
		barcodeH = 14
	}
	pdf.ImageOptions(imageName, barcodeX, barcodeY, barcodeW, barcodeH, false, opt, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetXY(barcodeX, barcodeY+barcodeH+1)
	pdf.CellFormat(barcodeW, 5, barcodeValue, "", 0, "C", false, 0, "")
	return nil
}

func badgeValue(id int64) string {
	return fmt.Sprintf("U%08d", id)
}

func fitFontSizeForWidth(pdf *gofpdf.Fpdf, family, style string, base, min float64, text string, maxWidth float64) float64 {
	if maxWidth <= 0 {
		return min
	}
	size := base
	pdf.SetFont(family, style, size)
	for size > min && pdf.GetStringWidth(text) > maxWidth {
		size -= 0.5
		pdf.SetFont(family, style, size)
	}
	return size
}

func renderCode128PNG(value string, width, height int) ([]byte, error) {
	code, err := code128.Encode(value)
	if err != nil {
		return nil, err
	}
	scaled, err := barcode.Scale(code, width, height)
	if err != nil {
		return nil, err
	}
	normalized := toNRGBA(scaled)
	var out bytes.Buffer
	if err := png.Encode(&out, normalized); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func toNRGBA(src image.Image) *image.NRGBA {
	bounds := src.Bounds()
	dst := image.NewNRGBA(bounds)
	draw.Draw(dst, bounds, src, bounds.Min, draw.Src)
	return dst
}
