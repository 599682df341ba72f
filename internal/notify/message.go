// Package notify forwards accepted ideas to the studio's chat channels.
package notify

import (
	"strings"
	"time"

	"github.com/qaspilab/qaspilab/internal/model"
)

// RenderMessage builds the chat text for an idea. Date and time are shown in loc.
func RenderMessage(idea *model.Idea, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	at := idea.CreatedAt.In(loc)

	contact := idea.ContactFormatted
	if contact == "" {
		contact = idea.Contact
	}

	var b strings.Builder
	b.WriteString("🚀 New idea from a client!\n\n")
	b.WriteString("👤 Name: " + idea.Name + "\n")
	b.WriteString("📞 Contact: " + contact + "\n")
	if idea.BudgetLabel != "" {
		b.WriteString("💰 Budget: " + idea.BudgetLabel + "\n")
	}
	b.WriteString("\n💡 Idea:\n")
	b.WriteString(idea.Description + "\n\n")
	b.WriteString("📅 Date: " + at.Format("02.01.2006") + "\n")
	b.WriteString("⏰ Time: " + at.Format("15:04:05"))
	if idea.Surface != "" {
		b.WriteString("\n📍 Form: " + idea.Surface)
	}
	return b.String()
}
