package utils

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"invoice-dashboard/models"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// FormatCurrency renders integer cents as US dollars, e.g. 157595 -> "$1,575.95".
func FormatCurrency(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	p := message.NewPrinter(language.AmericanEnglish)
	return p.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}

var dateLayouts = map[string]string{
	"en-US": "Jan 2, 2006",
	"en-GB": "2 Jan 2006",
}

// FormatDateToLocal renders a stored date as short month, day and year.
// Unknown locales fall back to en-US; unparseable input is returned as is.
func FormatDateToLocal(dateStr, locale string) string {
	layout, ok := dateLayouts[locale]
	if !ok {
		layout = dateLayouts["en-US"]
	}
	t, err := parseDate(dateStr)
	if err != nil {
		return dateStr
	}
	return t.Format(layout)
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// PageLabel is either a page number or the ellipsis marker.
type PageLabel struct {
	Page     int
	Ellipsis bool
}

// Ellipsis marks a gap in a pagination sequence.
var Ellipsis = PageLabel{Ellipsis: true}

// Page returns the label for page n.
func Page(n int) PageLabel { return PageLabel{Page: n} }

func (l PageLabel) String() string {
	if l.Ellipsis {
		return "..."
	}
	return fmt.Sprint(l.Page)
}

func (l PageLabel) MarshalJSON() ([]byte, error) {
	if l.Ellipsis {
		return json.Marshal("...")
	}
	return json.Marshal(l.Page)
}

func (l *PageLabel) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		if s != "..." {
			return fmt.Errorf("invalid page label %q", s)
		}
		*l = Ellipsis
		return nil
	}
	var n int
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*l = Page(n)
	return nil
}

func pages(nums ...int) []PageLabel {
	out := make([]PageLabel, 0, len(nums))
	for _, n := range nums {
		if n == 0 {
			out = append(out, Ellipsis)
			continue
		}
		out = append(out, Page(n))
	}
	return out
}

// GeneratePagination returns the page labels shown under the invoice table.
// At most seven pages are listed in full; longer ranges collapse around the
// current page.
func GeneratePagination(currentPage, totalPages int) []PageLabel {
	if totalPages <= 7 {
		out := make([]PageLabel, 0, max(totalPages, 0))
		for i := 1; i <= totalPages; i++ {
			out = append(out, Page(i))
		}
		return out
	}

	// 0 stands for the ellipsis below; page numbers start at 1.
	if currentPage <= 3 {
		return pages(1, 2, 3, 0, totalPages-1, totalPages)
	}
	if currentPage >= totalPages-2 {
		return pages(1, 2, 0, totalPages-2, totalPages-1, totalPages)
	}
	return pages(1, 0, currentPage-1, currentPage, currentPage+1, 0, totalPages)
}

// JoinLabels renders labels as "1 2 ... 9 10".
func JoinLabels(labels []PageLabel) string {
	parts := make([]string, len(labels))
	for i, l := range labels {
		parts[i] = l.String()
	}
	return strings.Join(parts, " ")
}

// GenerateYAxis builds the revenue chart labels in thousands, from the
// highest month rounded up to the next 1000 down to zero. No months, no
// labels.
func GenerateYAxis(revenue []models.Revenue) ([]string, int) {
	if len(revenue) == 0 {
		return []string{}, 0
	}
	highest := 0
	for _, month := range revenue {
		if month.Revenue > highest {
			highest = month.Revenue
		}
	}
	topLabel := (highest + 999) / 1000 * 1000

	labels := make([]string, 0, topLabel/1000+1)
	for i := topLabel; i >= 0; i -= 1000 {
		labels = append(labels, fmt.Sprintf("$%dK", i/1000))
	}
	return labels, topLabel
}
