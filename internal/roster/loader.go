package roster

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/zauwn/secret-santa/pkg/logging"
)

// ErrInsufficientParticipants means fewer than two valid entries survived ingestion.
var ErrInsufficientParticipants = errors.New("roster: need at least two valid participants")

const (
	statusSingle = "single"
	statusCouple = "couple"
)

// LoadFile reads a roster CSV from disk. See Load for the row format.
func LoadFile(path string, logger *logging.Logger) ([]Participant, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("roster: open %q: %w", path, err)
	}
	defer f.Close()
	return Load(f, logger)
}

// Load parses roster rows of the form:
//
//	single,name,phone
//	couple,name1,phone1,name2,phone2
//
// The first row is a header and skipped. Status is case-insensitive and
// every field is trimmed. Couple rows mint one group id shared by both
// participants. Malformed rows are logged with their line number and
// skipped; they never abort ingestion on their own.
func Load(r io.Reader, logger *logging.Logger) ([]Participant, error) {
	if logger == nil {
		logger = logging.Default()
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	if _, err := reader.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("roster: empty input: %w", ErrInsufficientParticipants)
		}
		return nil, fmt.Errorf("roster: read header: %w", err)
	}

	var participants []Participant
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			line := 0
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				line = parseErr.Line
			}
			logger.Error("roster: skipping unreadable row", "line", line, "error", err)
			continue
		}
		// csv.Reader swallows fully blank lines, so a manual counter would
		// drift past them; FieldPos reports the physical line of the record.
		line, _ := reader.FieldPos(0)
		if blankRow(row) {
			continue
		}

		switch strings.ToLower(strings.TrimSpace(row[0])) {
		case statusSingle:
			if len(row) < 3 || strings.TrimSpace(row[1]) == "" || strings.TrimSpace(row[2]) == "" {
				logger.Error("roster: invalid single entry", "line", line, "fields", len(row))
				continue
			}
			participants = append(participants, Participant{
				Name:  strings.TrimSpace(row[1]),
				Phone: strings.TrimSpace(row[2]),
			})
		case statusCouple:
			if len(row) < 5 ||
				strings.TrimSpace(row[1]) == "" || strings.TrimSpace(row[2]) == "" ||
				strings.TrimSpace(row[3]) == "" || strings.TrimSpace(row[4]) == "" {
				logger.Error("roster: invalid couple entry", "line", line, "fields", len(row))
				continue
			}
			groupID := uuid.NewString()
			participants = append(participants,
				Participant{
					Name:    strings.TrimSpace(row[1]),
					Phone:   strings.TrimSpace(row[2]),
					GroupID: groupID,
				},
				Participant{
					Name:    strings.TrimSpace(row[3]),
					Phone:   strings.TrimSpace(row[4]),
					GroupID: groupID,
				},
			)
		default:
			logger.Error("roster: invalid status", "line", line, "status", row[0])
		}
	}

	if len(participants) < 2 {
		return nil, fmt.Errorf("roster: found %d valid participants: %w", len(participants), ErrInsufficientParticipants)
	}
	logger.Info("roster loaded", "participants", len(participants))
	return participants, nil
}

func blankRow(row []string) bool {
	for _, field := range row {
		if strings.TrimSpace(field) != "" {
			return false
		}
	}
	return true
}
