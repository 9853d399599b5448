package messaging

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/zauwn/secret-santa/internal/draw"
	"github.com/zauwn/secret-santa/pkg/logging"
)

// Params are the display values substituted into the announcement.
type Params struct {
	Budget string
	Coin   string
	Year   string
}

const announcementText = "Secret Santa {{.Year}}!!! Congratulations {{.Santa}} " +
	"you're the Secret Santa of << {{.Receiver}} >>. " +
	"The gift's budget is: {{.Budget}}{{.Coin}}"

var announcement = template.Must(
	template.New("announcement").Option("missingkey=error").Parse(announcementText),
)

// Compose renders one message per santa, keyed by the santa's phone with
// whitespace removed. When two santas normalize to the same key the later
// message wins; the collision is logged so it is visible in the run log.
func Compose(assignment draw.Assignment, params Params, logger *logging.Logger) (map[string]string, error) {
	if logger == nil {
		logger = logging.Default()
	}

	messages := make(map[string]string, len(assignment))
	owners := make(map[string]string, len(assignment))
	for _, pair := range assignment {
		key := stripSpaces(pair.Santa.Phone)
		if key == "" {
			return nil, fmt.Errorf("messaging: santa %q has no phone", pair.Santa.Name)
		}

		var buf strings.Builder
		err := announcement.Execute(&buf, struct {
			Year, Santa, Receiver, Budget, Coin string
		}{
			Year:     params.Year,
			Santa:    pair.Santa.Name,
			Receiver: pair.Receiver.Name,
			Budget:   params.Budget,
			Coin:     params.Coin,
		})
		if err != nil {
			return nil, fmt.Errorf("messaging: render announcement for %q: %w", pair.Santa.Name, err)
		}

		if prev, ok := owners[key]; ok {
			logger.Warn("delivery key collision, keeping later message",
				"key", redact(key), "previous_santa", prev, "santa", pair.Santa.Name)
		}
		owners[key] = pair.Santa.Name
		messages[key] = buf.String()
	}
	return messages, nil
}
