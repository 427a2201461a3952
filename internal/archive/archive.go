// Package archive writes registration submissions as JSON documents, either to
// local disk or to a Cloudflare R2 bucket.
package archive

import (
	"encoding/json"
	"path"
	"strings"
	"time"

	"github.com/kyra-labs/internship-dashboard/internal/models"
	"github.com/kyra-labs/internship-dashboard/internal/utils"
)

type document struct {
	ID        string            `json:"id"`
	SessionID string            `json:"session_id,omitempty"`
	Role      models.Role       `json:"role"`
	Fields    map[string]string `json:"fields"`
	CreatedAt string            `json:"created_at"`
}

// ObjectKey is the relative location of reg, e.g. "registrations/msme/REG00ABCDE.json".
func ObjectKey(reg *models.Registration) string {
	return path.Join("registrations", strings.ToLower(string(reg.Role)), reg.ID+".json")
}

func encode(reg *models.Registration) ([]byte, error) {
	return json.MarshalIndent(document{
		ID:        reg.ID,
		SessionID: reg.SessionID,
		Role:      reg.Role,
		Fields:    utils.StringsFromJSONMap(reg.Fields),
		CreatedAt: reg.CreatedAt.UTC().Format(time.RFC3339),
	}, "", "  ")
}
