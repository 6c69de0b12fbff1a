package exports

import (
	"context"
	"encoding/csv"
	"io"
	"strconv"

	"fisiovida/infrastructure/directory"
)

// maxExportPages bounds the page walk so a misbehaving backend that keeps
// reporting more pages cannot loop the export forever.
const maxExportPages = 1000

// collectAllUsers walks every directory page in order and returns the full
// record set.
func collectAllUsers(ctx context.Context, dir directory.Directory) ([]directory.UserRecord, error) {
	var records []directory.UserRecord
	for pageIndex := 0; pageIndex < maxExportPages; pageIndex++ {
		page, err := dir.List(ctx, pageIndex, directory.PageSize)
		if err != nil {
			return nil, err
		}
		records = append(records, page.Items...)
		if page.Last || page.Empty {
			break
		}
	}
	return records, nil
}

func writeUsersCSV(w io.Writer, records []directory.UserRecord) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	if err := writer.Write([]string{"id", "nome_completo", "email", "telefone"}); err != nil {
		return err
	}
	for _, rec := range records {
		row := []string{
			strconv.FormatInt(rec.ID, 10),
			rec.FullName,
			rec.Email,
			rec.Phone,
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	return writer.Error()
}
