package export

import (
	"encoding/csv"
	"os"
)

// utf8BOM keeps Excel from misreading accented characters in CSV files
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// writeCSV renders the value as a CSV file with a UTF-8 BOM. Array
// payloads become one record per item; object payloads become
// metric/value records.
func writeCSV(value Value, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.Write(utf8BOM); err != nil {
		return err
	}

	w := csv.NewWriter(f)
	if value.Kind == KindList {
		if err := writeCSVTable(w, value); err != nil {
			return err
		}
	} else {
		if err := writeCSVMetrics(w, value); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func writeCSVTable(w *csv.Writer, value Value) error {
	if len(value.Items) == 0 {
		return nil
	}

	header := Flatten(value.Items[0], StyleCSV)
	record := make([]string, 0, len(header))
	for _, entry := range header {
		record = append(record, entry.Key)
	}
	if err := w.Write(record); err != nil {
		return err
	}

	for _, item := range value.Items {
		entries := Flatten(item, StyleCSV)
		record = record[:0]
		for _, entry := range entries {
			record = append(record, cellString(entry.Value))
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	return nil
}

func writeCSVMetrics(w *csv.Writer, value Value) error {
	if err := w.Write([]string{"metric", "value"}); err != nil {
		return err
	}
	for _, entry := range Flatten(value, StyleCSV) {
		if err := w.Write([]string{entry.Key, cellString(entry.Value)}); err != nil {
			return err
		}
	}
	return nil
}
