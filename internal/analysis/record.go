package analysis

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"scentid/internal/logging"
	"scentid/internal/textnorm"
)

// webhookProduct is one product entry in a structured webhook record. The
// mapped name, when present, supersedes the original.
type webhookProduct struct {
	OriginalName string `json:"original_name"`
	MappedName   string `json:"mapped_name"`
}

func (w webhookProduct) fullName() string {
	if name := strings.TrimSpace(w.MappedName); name != "" {
		return name
	}
	return strings.TrimSpace(w.OriginalName)
}

// webhookRecord mirrors the JSON shape the annotation webhook writes per
// analyzed image.
type webhookRecord struct {
	Filename         string           `json:"filename"`
	PrincipalProduct *webhookProduct  `json:"principal_product"`
	Products         []webhookProduct `json:"products"`
	Timestamp        string           `json:"timestamp"`
}

// DecodeRecord parses a structured webhook record into a Result. Mentions
// carrying the "not visible" sentinel are dropped; if the principal entry is
// unusable the first usable product is promoted. A record that yields zero
// mentions is still a valid Result.
func DecodeRecord(data []byte) (Result, error) {
	var record webhookRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return Result{}, fmt.Errorf("decode analysis record: %w", err)
	}
	if strings.TrimSpace(record.Filename) == "" {
		return Result{}, fmt.Errorf("decode analysis record: missing filename")
	}

	var mentions []Mention
	principalFull := ""
	if record.PrincipalProduct != nil {
		if m, ok := mentionFromFullName(record.PrincipalProduct.fullName(), RolePrincipal); ok {
			mentions = append(mentions, m)
			principalFull = record.PrincipalProduct.fullName()
		}
	}
	for _, product := range record.Products {
		full := product.fullName()
		if full == principalFull && principalFull != "" {
			// The webhook repeats the principal at the head of the list.
			principalFull = ""
			continue
		}
		if m, ok := mentionFromFullName(full, RoleSecondary); ok {
			mentions = append(mentions, m)
		}
	}
	if len(mentions) > 0 && mentions[0].Role != RolePrincipal {
		mentions[0].Role = RolePrincipal
	}

	timestamp := time.Now().UTC()
	if parsed, err := time.Parse(time.RFC3339, record.Timestamp); err == nil {
		timestamp = parsed
	}

	return Result{
		Filename:  record.Filename,
		Mentions:  mentions,
		Timestamp: timestamp,
	}, nil
}

// EncodeRecord serializes a Result in the webhook record shape, so results
// produced locally and results received from the annotation webhook live in
// the analysis directory in one format.
func EncodeRecord(result Result) ([]byte, error) {
	record := webhookRecord{
		Filename:  result.Filename,
		Timestamp: result.Timestamp.UTC().Format(time.RFC3339),
	}
	for _, m := range result.Mentions {
		product := webhookProduct{OriginalName: m.FullName()}
		if m.Role == RolePrincipal && record.PrincipalProduct == nil {
			record.PrincipalProduct = &product
			continue
		}
		record.Products = append(record.Products, product)
	}
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode analysis record: %w", err)
	}
	return append(data, '\n'), nil
}

// mentionFromFullName builds a mention from a "<name> - <brand>" string; a
// string with no separator becomes a brandless mention.
func mentionFromFullName(full string, role Role) (Mention, bool) {
	if full == "" || containsSentinel(full) {
		return Mention{}, false
	}
	if m, ok := newMention(full, role); ok {
		return m, true
	}
	if strings.Contains(full, " - ") {
		return Mention{}, false
	}
	return Mention{
		Name: full,
		Slug: textnorm.Slugify(full),
		Role: role,
	}, true
}

// LoadRecords reads every structured record under dir (any *.json except
// index.json). Unreadable or malformed files are logged and skipped so one
// bad record cannot abort a batch.
func LoadRecords(dir string, logger *slog.Logger) ([]Result, error) {
	if logger == nil {
		logger = logging.NewNop()
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read analysis dir: %w", err)
	}

	results := make([]Result, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || filepath.Ext(name) != ".json" || name == "index.json" {
			continue
		}
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			logger.Warn("skipping unreadable analysis record",
				logging.String("path", path), logging.Error(err))
			continue
		}
		result, err := DecodeRecord(data)
		if err != nil {
			logger.Warn("skipping malformed analysis record",
				logging.String("path", path), logging.Error(err))
			continue
		}
		results = append(results, result)
	}
	return results, nil
}
