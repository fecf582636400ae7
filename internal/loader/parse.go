package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gocarina/gocsv"

	"github.com/abhisek/csvquiz/internal/quiz"
)

// Recognised header columns.
const (
	ColumnQuestion = "Question"
	ColumnOption1  = "Option 1"
	ColumnOption2  = "Option 2"
	ColumnOption3  = "Option 3"
	ColumnOption4  = "Option 4"
	ColumnCorrect  = "Correct Answer"
)

var requiredColumns = []string{
	ColumnQuestion, ColumnOption1, ColumnOption2, ColumnOption3, ColumnOption4, ColumnCorrect,
}

// row is one CSV record mapped by header name.
type row struct {
	Question string `csv:"Question"`
	Option1  string `csv:"Option 1"`
	Option2  string `csv:"Option 2"`
	Option3  string `csv:"Option 3"`
	Option4  string `csv:"Option 4"`
	Correct  string `csv:"Correct Answer"`
}

func (r *row) blank() bool {
	for _, v := range []string{r.Question, r.Option1, r.Option2, r.Option3, r.Option4, r.Correct} {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

func (r *row) question() quiz.Question {
	return quiz.Question{
		Prompt:  r.Question,
		Options: [quiz.OptionCount]string{r.Option1, r.Option2, r.Option3, r.Option4},
		Correct: r.Correct,
	}
}

// Parse reads a header-row CSV bank. Columns are matched by name, in any
// order; unknown columns are ignored and blank rows skipped. Values are
// kept verbatim.
func Parse(r io.Reader) ([]quiz.Question, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	var rows []*row
	if err := gocsv.UnmarshalCSV(&headerReader{r: cr}, &rows); err != nil {
		if errors.Is(err, ErrMalformed) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	questions := make([]quiz.Question, 0, len(rows))
	for _, rw := range rows {
		if rw == nil || rw.blank() {
			continue
		}
		questions = append(questions, rw.question())
	}
	return questions, nil
}

// headerReader normalises and validates the header row before gocsv maps
// the records.
type headerReader struct {
	r *csv.Reader
}

func (h *headerReader) Read() ([]string, error) {
	return h.r.Read()
}

func (h *headerReader) ReadAll() ([][]string, error) {
	records, err := h.r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: no header row", ErrMalformed)
	}

	header := records[0]
	for i, col := range header {
		if i == 0 {
			col = strings.TrimPrefix(col, "\ufeff")
		}
		header[i] = strings.TrimSpace(col)
	}
	if missing := missingColumns(header); len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing columns %s", ErrMalformed, strings.Join(missing, ", "))
	}
	return records, nil
}

func missingColumns(header []string) []string {
	present := make(map[string]bool, len(header))
	for _, col := range header {
		present[col] = true
	}
	var missing []string
	for _, col := range requiredColumns {
		if !present[col] {
			missing = append(missing, fmt.Sprintf("%q", col))
		}
	}
	return missing
}
