package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/nao1215/markdown"

	"github.com/hamed0406/footprint/internal/domain"
)

// MarkdownWriter renders a search response as a GitHub-flavored Markdown
// document.
type MarkdownWriter struct {
	output io.Writer
}

func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{output: output}
}

// Write renders resp. Results must be one of the *domain.*Result types.
func (w *MarkdownWriter) Write(resp *domain.SearchResponse) error {
	md := markdown.NewMarkdown(w.output)

	md.H1("Digital Footprint Report")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Query", "`" + resp.Query + "`"},
			{"Search Type", string(resp.Type)},
			{"Timestamp", resp.Timestamp},
		},
	})
	md.PlainText("")

	switch res := resp.Results.(type) {
	case *domain.UsernameResult:
		w.writeUsername(md, res)
	case *domain.EmailResult:
		w.writeEmail(md, res)
	case *domain.NameResult:
		w.writeName(md, res)
	default:
		return fmt.Errorf("markdown: unsupported results type %T", resp.Results)
	}

	md.HorizontalRule()
	md.PlainText("*A found profile only means the URL answered 200; verify ownership manually.*")
	return md.Build()
}

func (w *MarkdownWriter) writeUsername(md *markdown.Markdown, res *domain.UsernameResult) {
	md.H2("Profiles")
	md.PlainText("")
	md.PlainTextf("Found on **%d** of %d platforms.", res.TotalFound, len(res.SocialMedia))
	md.PlainText("")
	md.Table(outcomeTable(res.SocialMedia))
	md.PlainText("")
}

func (w *MarkdownWriter) writeEmail(md *markdown.Markdown, res *domain.EmailResult) {
	if res.Error != "" {
		md.Cautionf("%s", res.Error)
		return
	}

	md.H2("Address")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Email", res.Email},
			{"Username", res.Username},
			{"Domain", res.Domain},
			{"Provider", res.Provider},
		},
	})
	md.PlainText("")

	if info := res.DomainInformation; info != nil {
		md.H2("Domain Registration")
		md.PlainText("")
		if info.Error != "" {
			md.Warningf("%s", info.Error)
			if info.Note != "" {
				md.PlainText(info.Note)
			}
		} else {
			md.Table(markdown.TableSet{
				Header: []string{"Field", "Value"},
				Rows: [][]string{
					{"Domain", info.DomainName},
					{"Registrar", info.Registrar},
					{"Organization", info.Organization},
					{"Created", info.CreationDate},
					{"Expires", info.ExpirationDate},
					{"Status", info.Status},
				},
			})
			if len(info.NameServers) > 0 {
				md.PlainText("")
				md.PlainText("Name servers:")
				md.BulletList(info.NameServers...)
			}
		}
		md.PlainText("")
	}

	if mail := res.MailServers; mail != nil {
		md.H2("Mail Servers")
		md.PlainText("")
		md.PlainTextf("Status: `%s`", mail.Class)
		if len(mail.MXHosts) > 0 {
			md.BulletList(mail.MXHosts...)
		}
		md.PlainText("")
	}

	md.H2("Accounts")
	md.PlainText("")
	md.PlainTextf("Found on **%d** of %d platforms.", res.TotalSocialAccounts, len(res.SocialMediaAccounts))
	md.PlainText("")
	md.Table(outcomeTable(res.SocialMediaAccounts))
	md.PlainText("")
	if res.Note != "" {
		md.Note(res.Note)
	}
}

func (w *MarkdownWriter) writeName(md *markdown.Markdown, res *domain.NameResult) {
	md.H2("Username Variations")
	md.PlainText("")
	md.BulletList(res.UsernameVariations...)
	md.PlainText("")

	md.H2("Profiles by Confidence")
	md.PlainText("")
	md.PlainTextf("**%d** profiles found.", res.TotalProfilesFound)
	md.PlainText("")
	groups := []struct {
		title    string
		outcomes []domain.ProbeOutcome
	}{
		{"High", res.GroupedProfiles.High},
		{"Medium", res.GroupedProfiles.Medium},
		{"Low", res.GroupedProfiles.Low},
	}
	for _, g := range groups {
		md.H3(g.title + " (" + strconv.Itoa(len(g.outcomes)) + ")")
		md.PlainText("")
		if len(g.outcomes) > 0 {
			md.Table(outcomeTable(g.outcomes))
			md.PlainText("")
		}
	}
	if res.GroupedProfiles.Note != "" {
		md.Note(res.GroupedProfiles.Note)
	}

	md.H2("Search Queries")
	md.PlainText("")
	rows := make([][]string, 0, len(res.SearchQueries))
	for _, q := range res.SearchQueries {
		rows = append(rows, []string{q.Type, link(q.Query, q.URL), q.Description})
	}
	md.Table(markdown.TableSet{Header: []string{"Type", "Query", "Description"}, Rows: rows})
	md.PlainText("")

	md.H2("Public Records")
	md.PlainText("")
	pr := res.PublicRecords
	md.BulletList(
		link("Google", pr.GoogleSearch),
		link("News", pr.NewsSearch),
		link("PDF documents", pr.PDFDocuments),
		link("LinkedIn", pr.LinkedInSearch),
		link("GitHub", pr.GitHubSearch),
	)
	md.PlainText("")
}

func outcomeTable(outcomes []domain.ProbeOutcome) markdown.TableSet {
	rows := make([][]string, 0, len(outcomes))
	for _, o := range outcomes {
		rows = append(rows, []string{o.Platform, o.Username, status(o), o.URL})
	}
	return markdown.TableSet{
		Header: []string{"Platform", "Username", "Status", "URL"},
		Rows:   rows,
	}
}

func status(o domain.ProbeOutcome) string {
	switch {
	case o.Found:
		return "✅ found"
	case o.Error != "":
		return "⚠️ " + string(o.Error)
	case o.StatusCode != nil:
		return "❌ " + strconv.Itoa(*o.StatusCode)
	}
	return "❌"
}

func link(text, url string) string {
	return "[" + text + "](" + url + ")"
}
