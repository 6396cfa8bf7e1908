package listview

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"text/tabwriter"
	"time"
)

// DateLayout is the tr-TR short date form (dd.MM.yyyy).
const DateLayout = "02.01.2006"

var headers = [...]string{"Ad", "Soyad", "E-posta", "Kayıt Tarihi"}

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplate = template.Must(template.New("page.html").ParseFS(templateFS, "templates/page.html"))

type row struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
	CreatedAt string
}

func rows(s State, loc *time.Location) []row {
	if loc == nil {
		loc = time.UTC
	}
	out := make([]row, 0, len(s.Records))
	for _, c := range s.Records {
		out = append(out, row{
			ID:        c.ID,
			FirstName: c.FirstName,
			LastName:  c.LastName,
			Email:     c.Email,
			CreatedAt: c.CreatedAt.In(loc).Format(DateLayout),
		})
	}
	return out
}

// RenderText writes s as a plain-text table for terminals.
func RenderText(w io.Writer, s State, loc *time.Location) error {
	if _, err := fmt.Fprintf(w, "%s\n\n", MsgTitle); err != nil {
		return err
	}

	switch {
	case s.Load.Status == Loading:
		_, err := fmt.Fprintln(w, MsgLoading)
		return err
	case s.Load.Status == Failed:
		_, err := fmt.Fprintf(w, "Hata: %s\n", s.Load.Message)
		return err
	case s.ShowEmpty():
		_, err := fmt.Fprintln(w, MsgEmpty)
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s %s\n", headers[0], headers[1], headers[2], headers[3], s.Sort.Glyph())
	for _, r := range rows(s, loc) {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.FirstName, r.LastName, r.Email, r.CreatedAt)
	}
	return tw.Flush()
}

type pageData struct {
	Title       string
	Loading     bool
	LoadingText string
	Failed      bool
	Message     string
	Empty       bool
	EmptyText   string
	ShowTable   bool
	Headers     [4]string
	Glyph       string
	ToggleHref  string
	Rows        []row
}

// RenderHTML writes s as a full HTML page. toggleHref is the link behind the
// Kayıt Tarihi header.
func RenderHTML(w io.Writer, s State, loc *time.Location, toggleHref string) error {
	return pageTemplate.Execute(w, pageData{
		Title:       MsgTitle,
		Loading:     s.Load.Status == Loading,
		LoadingText: MsgLoading,
		Failed:      s.Load.Status == Failed,
		Message:     s.Load.Message,
		Empty:       s.ShowEmpty(),
		EmptyText:   MsgEmpty,
		ShowTable:   s.ShowTable(),
		Headers:     headers,
		Glyph:       s.Sort.Glyph(),
		ToggleHref:  toggleHref,
		Rows:        rows(s, loc),
	})
}
