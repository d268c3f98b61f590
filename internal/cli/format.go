package cli

import (
	"fmt"
	"strings"
	"time"
)

// fmtTime форматирует опциональный timestamp для таблиц.
func fmtTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339)
}

// splitRecipeRef разбирает ссылку на recipe вида "owner/name/tag".
func splitRecipeRef(ref string) (owner, name, tag string, err error) {
	parts := strings.Split(ref, "/")
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return "", "", "", fmt.Errorf("invalid recipe reference %q, expected OWNER/NAME/TAG", ref)
	}
	return parts[0], parts[1], parts[2], nil
}
