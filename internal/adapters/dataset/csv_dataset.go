package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/mikey/spam-detector/internal/core"
	"github.com/mikey/spam-detector/internal/utils"
	"go.uber.org/zap"
)

// defaultDataset is written when no dataset exists yet. The second row
// carries an unquoted comma and therefore parses as three fields.
const defaultDataset = `label,content
spam,Congratulations! You've won a free iPhone! Click here to claim now!!!
ham,Hi John, can we schedule a meeting to discuss the project next week?
spam,URGENT: You've been selected for an exclusive lottery. Claim your $10,000 prize NOW!
ham,Please find attached the quarterly report for your review.
spam,GET RICH QUICK! Make $5000 per week working from home. No experience needed!
ham,Meeting minutes from today's team discussion are attached.
spam,Limited time offer! 90% OFF all products. Buy now before it's gone!
ham,Could you please send me the updated client contact list?
spam,You are the WINNER of our mega sweepstakes! Claim your prize immediately!
ham,Thank you for your recent order. Your package will be shipped soon.
spam,FREE VIAGRA! Lowest prices guaranteed. Buy now!
ham,Please confirm your attendance for the upcoming conference.
spam,Make millions from home! Our proven system guarantees success!!!
ham,Your monthly bank statement is now available for review.
spam,ATTENTION: Your computer is infected. Click here to fix immediately!
ham,Draft proposal for the new marketing strategy is ready for your feedback.
spam,Exclusive offer: Become a millionaire overnight! No investment required!
ham,Reminder: Performance review meetings are scheduled for next week.
spam,WIN BIG! Mega casino bonus waiting for you. No deposit needed!
ham,Invoice #1234 for services rendered is attached for your records.
`

const (
	defaultLabel   = "ham"
	defaultContent = ""
)

// CSVDataset reads labeled emails from a label,content CSV file
type CSVDataset struct {
	path          string
	out           io.Writer
	textProcessor *utils.TextProcessor
	logger        *zap.Logger
}

// NewCSVDataset creates a dataset provider for the file at path.
// Creation notices are written to out.
func NewCSVDataset(path string, out io.Writer, tp *utils.TextProcessor, logger *zap.Logger) *CSVDataset {
	return &CSVDataset{
		path:          path,
		out:           out,
		textProcessor: tp,
		logger:        logger,
	}
}

// Path returns the location of the dataset file
func (d *CSVDataset) Path() string {
	return d.path
}

// Ensure writes the built-in dataset if no file exists at the path
func (d *CSVDataset) Ensure() error {
	_, err := os.Stat(d.path)
	if err == nil {
		d.logger.Debug("Using existing dataset", zap.String("path", d.path))
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s: %w", core.ErrDatasetCreate, d.path, err)
	}

	if err := os.WriteFile(d.path, []byte(defaultDataset), 0644); err != nil {
		return fmt.Errorf("%w: %s: %w", core.ErrDatasetCreate, d.path, err)
	}

	fmt.Fprintf(d.out, "Created default spam dataset: %s\n", d.path)
	d.logger.Info("Created default dataset", zap.String("path", d.path))
	return nil
}

// Load parses the dataset, skipping the header row. Rows with missing
// fields default to label "ham" and empty content; extra fields are ignored.
// Stray quotes are kept as literal text, but every field must be valid UTF-8.
func (d *CSVDataset) Load() ([]core.LabeledEmail, error) {
	file, err := os.Open(d.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", core.ErrDatasetParse, err)
	}
	defer file.Close()

	emails, err := d.parse(file)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", core.ErrDatasetParse, d.path, err)
	}

	d.logger.Info("Loaded dataset",
		zap.String("path", d.path),
		zap.Int("records", len(emails)))
	return emails, nil
}

func (d *CSVDataset) parse(r io.Reader) ([]core.LabeledEmail, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var emails []core.LabeledEmail
	header := true
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		for i, value := range record {
			if err := d.textProcessor.ValidateUTF8(value); err != nil {
				line, column := reader.FieldPos(i)
				return nil, fmt.Errorf("line %d, column %d: %w", line, column, err)
			}
		}
		if header {
			header = false
			continue
		}

		emails = append(emails, core.LabeledEmail{
			Label:   field(record, 0, defaultLabel),
			Content: field(record, 1, defaultContent),
		})
	}

	return emails, nil
}

func field(record []string, i int, fallback string) string {
	if i < len(record) {
		return record[i]
	}
	return fallback
}
