package ui

import (
	"strings"
	"time"

	"github.com/Mobo140/vupp-cli/internal/model"
	"github.com/gookit/color"
	"github.com/samber/lo"
)

var (
	ownStyle    = color.New(color.FgCyan)
	senderStyle = color.New(color.FgMagenta, color.OpBold)
	timeStyle   = color.New(color.FgGray)
	ErrorStyle  = color.New(color.FgRed)
	NoticeStyle = color.New(color.FgGreen)
	HeaderStyle = color.New(color.BgBlack, color.FgGreen, color.OpBold)
)

// FormatTime shows the hour for messages younger than a day and the date
// otherwise. Unparseable timestamps are shown as they came.
func FormatTime(timestamp string, now time.Time) string {
	ts, err := parseTimestamp(timestamp)
	if err != nil {
		return timestamp
	}

	if now.Sub(ts) < 24*time.Hour {
		return ts.Local().Format("15:04")
	}

	return ts.Local().Format("Jan 2")
}

func parseTimestamp(timestamp string) (time.Time, error) {
	ts, err := time.Parse(time.RFC3339Nano, timestamp)
	if err == nil {
		return ts, nil
	}

	// timestamps without zone are read as UTC
	return time.Parse("2006-01-02T15:04:05.999999999", timestamp)
}

// Renderer turns messages into display lines for one user.
type Renderer struct {
	self string
	now  func() time.Time
}

func NewRenderer(self string) *Renderer {
	return &Renderer{self: self, now: time.Now}
}

// Lines renders every message; multi-line content keeps its line breaks.
// Only other people's messages carry the sender name.
func (r *Renderer) Lines(messages []model.Message) []string {
	if len(messages) == 0 {
		return []string{timeStyle.Render("No messages yet. Start the conversation!")}
	}

	now := r.now()

	return lo.FlatMap(messages, func(msg model.Message, _ int) []string {
		stamp := timeStyle.Render(FormatTime(msg.Timestamp, now))
		content := strings.Split(msg.Content, "\n")

		if msg.Sender == r.self {
			return lo.Map(content, func(line string, i int) string {
				return lo.Ternary(i == 0, stamp+" "+ownStyle.Render("> "+line), "      "+ownStyle.Render("  "+line))
			})
		}

		head := stamp + " " + senderStyle.Render(msg.Sender) + ": "

		return lo.Map(content, func(line string, i int) string {
			return lo.Ternary(i == 0, head+line, "      "+line)
		})
	})
}
