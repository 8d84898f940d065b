package relay

import (
	"fmt"
	"html"

	"github.com/insighteer/relaybot/internal/bus"
)

// profileLink builds a link to the user's profile: the public t.me URL
// when a username exists, otherwise the id-based deep link.
func profileLink(userID int64, username string) string {
	if username != "" {
		return fmt.Sprintf("https://t.me/%s", username)
	}
	return fmt.Sprintf("tg://user?id=%d", userID)
}

// profileLabel is the visible text of the profile link.
func profileLabel(userID int64, username string) string {
	if username != "" {
		return "t.me/" + username
	}
	return fmt.Sprintf("user?id=%d", userID)
}

// userBlock renders the HTML block of user details attached to every
// admin notification.
func userBlock(ev *bus.Event) string {
	name := ev.DisplayName
	if name == "" {
		name = nameNotSpecified
	}
	return fmt.Sprintf(
		"<b>Данные пользователя:</b>\nID: %d\nИмя: %s\nПрофиль: <a href=\"%s\">%s</a>",
		ev.AuthorID,
		html.EscapeString(name),
		profileLink(ev.AuthorID, ev.Username),
		html.EscapeString(profileLabel(ev.AuthorID, ev.Username)),
	)
}

// startNotice renders the admin notification for a /start event.
func startNotice(ev *bus.Event) string {
	return fmt.Sprintf("<b>%s</b>\n\n%s", startNoticeHeader, userBlock(ev))
}

// forwardNotice renders the admin notification for a relayed user message.
// body is the user's text or caption, or the media placeholder.
func forwardNotice(ev *bus.Event, body string) string {
	return fmt.Sprintf("<b>%s</b>\n\n%s\n\n%s", userMessageHeader, html.EscapeString(body), userBlock(ev))
}
