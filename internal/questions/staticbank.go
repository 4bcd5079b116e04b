package questions

import (
	"context"
	"crypto/sha256"
	"encoding/csv"
	"encoding/hex"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/jonathan/smarthire/internal/types"
)

// maxBankQuestions caps how many questions one session draws from a bank role.
const maxBankQuestions = 5

// Bank holds the pre-authored question dataset, loaded once at process start.
// Rows are kept in file order so truncation is deterministic.
type Bank struct {
	byRole map[string][]bankEntry
}

type bankEntry struct {
	question string
	skills   []string
}

// BankLoadError represents a failure to load or verify the question dataset.
type BankLoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *BankLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load question bank %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load question bank %s: %s", e.Path, e.Message)
}

func (e *BankLoadError) Unwrap() error {
	return e.Cause
}

// LoadBank reads the question dataset from a CSV file with columns
// role,question,skills (skills comma-separated, may be empty). If checksum is
// non-empty the file's SHA-256 must match it. This replaces any implicit
// download-and-cache behavior: loading happens exactly once, explicitly, at
// startup.
func LoadBank(path, checksum string) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &BankLoadError{Path: path, Message: "read failed", Cause: err}
	}

	if checksum != "" {
		sum := sha256.Sum256(data)
		if got := hex.EncodeToString(sum[:]); !strings.EqualFold(got, checksum) {
			return nil, &BankLoadError{Path: path, Message: fmt.Sprintf("checksum mismatch: got %s", got)}
		}
	}

	reader := csv.NewReader(strings.NewReader(string(data)))
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, &BankLoadError{Path: path, Message: "csv parse failed", Cause: err}
	}

	bank := &Bank{byRole: make(map[string][]bankEntry)}
	for i, rec := range records {
		if i == 0 && len(rec) > 0 && strings.EqualFold(rec[0], "role") {
			continue // header
		}
		if len(rec) < 2 {
			continue
		}
		role := normalizeRole(rec[0])
		entry := bankEntry{question: strings.TrimSpace(rec[1])}
		if len(rec) > 2 && rec[2] != "" {
			for _, s := range strings.Split(rec[2], ",") {
				if s = strings.TrimSpace(s); s != "" {
					entry.skills = append(entry.skills, s)
				}
			}
		}
		if entry.question == "" {
			continue
		}
		bank.byRole[role] = append(bank.byRole[role], entry)
	}

	return bank, nil
}

// Roles returns the number of distinct roles in the bank.
func (b *Bank) Roles() int {
	return len(b.byRole)
}

// AverageSkillMatch returns the mean overlap between the candidate's skills
// and the skill lists in the dataset, rounded to two decimals. Zero when the
// bank has no skill data.
func (b *Bank) AverageSkillMatch(skills []string) float64 {
	if len(skills) == 0 {
		return 0
	}
	mine := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		mine[strings.ToLower(strings.TrimSpace(s))] = struct{}{}
	}

	rows, total := 0, 0
	for _, entries := range b.byRole {
		for _, entry := range entries {
			if len(entry.skills) == 0 {
				continue
			}
			rows++
			for _, s := range entry.skills {
				if _, ok := mine[strings.ToLower(s)]; ok {
					total++
				}
			}
		}
	}
	if rows == 0 {
		return 0
	}
	return round2(float64(total) / float64(rows))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func normalizeRole(role string) string {
	return strings.ToLower(strings.TrimSpace(role))
}

// StaticBankSource serves questions from a pre-loaded Bank.
type StaticBankSource struct {
	bank *Bank
}

// NewStaticBankSource creates a StaticBankSource backed by bank.
func NewStaticBankSource(bank *Bank) *StaticBankSource {
	return &StaticBankSource{bank: bank}
}

// Generate returns at most maxBankQuestions for the role, in stored order.
// A role with no bank entry yields an empty sequence, not an error: the
// pipeline proceeds to an empty-question session.
func (s *StaticBankSource) Generate(_ context.Context, role string, _ *types.ResumeProfile) ([]types.Question, error) {
	entries := s.bank.byRole[normalizeRole(role)]
	if len(entries) > maxBankQuestions {
		entries = entries[:maxBankQuestions]
	}

	qs := make([]types.Question, 0, len(entries))
	for _, entry := range entries {
		keywords := entry.skills
		if len(keywords) == 0 {
			keywords = TokenizeKeywords(entry.question)
		}
		qs = append(qs, types.Question{Text: entry.question, ExpectedKeywords: keywords})
	}
	return qs, nil
}
