package service

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"agenda/internal/model"
)

// French month names for user-facing dates. The renderer speaks French; the
// rest of the pipeline is language-neutral.
var monthFull = map[time.Month]string{
	time.January:   "Janvier",
	time.February:  "Février",
	time.March:     "Mars",
	time.April:     "Avril",
	time.May:       "Mai",
	time.June:      "Juin",
	time.July:      "Juillet",
	time.August:    "Août",
	time.September: "Septembre",
	time.October:   "Octobre",
	time.November:  "Novembre",
	time.December:  "Décembre",
}

var monthAbbr = map[time.Month]string{
	time.January:   "Jan",
	time.February:  "Fév",
	time.March:     "Mar",
	time.April:     "Avr",
	time.May:       "Mai",
	time.June:      "Jun",
	time.July:      "Jul",
	time.August:    "Aoû",
	time.September: "Sep",
	time.October:   "Oct",
	time.November:  "Nov",
	time.December:  "Déc",
}

var htmlTagRe = regexp.MustCompile(`<.*?>`)

// CleanHTML strips tags and the usual entities from feed descriptions.
func CleanHTML(raw string) string {
	if raw == "" {
		return ""
	}
	text := htmlTagRe.ReplaceAllString(raw, "")
	text = strings.ReplaceAll(text, "&nbsp;", " ")
	text = strings.ReplaceAll(text, "&amp;", "&")
	text = strings.ReplaceAll(text, "\r\n", " ")
	return strings.TrimSpace(text)
}

// FormatDateShort renders an event's date window in short French form.
func FormatDateShort(start, end *time.Time) string {
	if start == nil {
		return "📅 Date à confirmer"
	}

	sameDay := end == nil || (start.Year() == end.Year() && start.YearDay() == end.YearDay())
	if sameDay {
		return fmt.Sprintf("📅 %02d %s %d", start.Day(), monthFull[start.Month()], start.Year())
	}

	return fmt.Sprintf("📅 Du %02d %s au %02d %s %d",
		start.Day(), monthAbbr[start.Month()],
		end.Day(), monthAbbr[end.Month()], end.Year())
}

// FormatPrice renders the price line, or "" when there is nothing to say.
func FormatPrice(ev *model.Event) string {
	if ev.IsFree {
		return "🆓 Gratuit"
	}
	if ev.Price > 0 {
		return fmt.Sprintf("💰 %s FCFA", groupThousands(int(ev.Price)))
	}
	return ""
}

var categoryEmojis = []struct {
	keyword string
	emoji   string
}{
	{"musique", "🎵"},
	{"concert", "🎤"},
	{"festival", "🎪"},
	{"football", "⚽"},
	{"basketball", "🏀"},
	{"sport", "⚽"},
	{"théâtre", "🎭"},
	{"culture", "🎭"},
	{"danse", "💃"},
	{"cinéma", "🎬"},
	{"exposition", "🖼️"},
	{"art", "🎨"},
	{"conférence", "🎤"},
	{"formation", "📚"},
	{"business", "💼"},
	{"soirée", "🌙"},
	{"gastronomie", "🍽️"},
	{"famille", "👨‍👩‍👧‍👦"},
	{"enfants", "👶"},
	{"bien-être", "🧘"},
	{"religion", "🙏"},
	{"mode", "👗"},
}

// FormatCategory renders the category with a matching emoji.
func FormatCategory(category string) string {
	if category == "" {
		return ""
	}

	catLower := strings.ToLower(category)
	emoji := "🏷️"
	for _, ce := range categoryEmojis {
		if strings.Contains(catLower, ce.keyword) {
			emoji = ce.emoji
			break
		}
	}

	return emoji + " " + capitalize(category)
}

const (
	descMaxLen  = 120
	defaultLink = "https://lagenda.bj"
)

// FormatEvents renders scored events as French markdown blocks separated by
// horizontal rules, ready for the chat frontend.
func FormatEvents(results []model.EventSearchResult) string {
	if len(results) == 0 {
		return "📍 *Note :* Aucun événement trouvé pour ces critères."
	}

	blocks := make([]string, 0, len(results))

	for i := range results {
		ev := &results[i].Event

		title := strings.ToUpper(ev.Title)
		if title == "" {
			title = "ÉVÉNEMENT"
		}
		city := ev.City
		if city == "" {
			city = "Bénin"
		}
		link := ev.Link
		if link == "" {
			link = defaultLink
		}

		var b strings.Builder
		fmt.Fprintf(&b, "⭐ **[%s](%s)**\n", title, link)

		locationParts := []string{city}
		if ev.VenueName != "" && ev.VenueName != city {
			locationParts = append(locationParts, ev.VenueName)
		}
		fmt.Fprintf(&b, "📍 %s | %s\n", strings.Join(locationParts, " - "), FormatDateShort(ev.DateStart, ev.DateEnd))

		var metaParts []string
		if ev.Category != nil {
			if cat := FormatCategory(*ev.Category); cat != "" {
				metaParts = append(metaParts, cat)
			}
		}
		if price := FormatPrice(ev); price != "" {
			metaParts = append(metaParts, price)
		}
		if len(metaParts) > 0 {
			b.WriteString(strings.Join(metaParts, " | ") + "\n")
		}

		if ev.Image != "" {
			fmt.Fprintf(&b, "![affiche](%s)\n", ev.Image)
		}

		if desc := truncateRunes(CleanHTML(ev.Description), descMaxLen); desc != "" {
			fmt.Fprintf(&b, "📝 _%s_\n", desc)
		}

		fmt.Fprintf(&b, "🔗 [Plus d'infos](%s)", link)
		blocks = append(blocks, b.String())
	}

	return strings.Join(blocks, "\n\n---\n\n")
}

// groupThousands formats 15000 as "15 000".
func groupThousands(n int) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	return strings.Join(parts, " ")
}

// truncateRunes shortens text to max runes, ellipsized.
func truncateRunes(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max-3]) + "..."
}

func capitalize(s string) string {
	if s == "" {
		return ""
	}
	runes := []rune(s)
	return strings.ToUpper(string(runes[0])) + string(runes[1:])
}
