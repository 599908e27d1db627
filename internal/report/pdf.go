package report

import (
	"fmt"
	"io"
	"time"

	"github.com/unidoc/unipdf/v3/creator"
	"github.com/unidoc/unipdf/v3/model"

	"github.com/akshaynaik00018/cpms/internal/stats"
)

// WritePlacementPDF renders the placement report. Layout is a title block,
// the headline numbers, branch-wise rates, package spread and top
// recruiters.
func WritePlacementPDF(w io.Writer, r stats.Report, generatedAt time.Time) error {
	c := creator.New()
	c.SetPageMargins(50, 50, 50, 50)

	regular, err := model.NewStandard14Font(model.HelveticaName)
	if err != nil {
		return err
	}
	bold, err := model.NewStandard14Font(model.HelveticaBoldName)
	if err != nil {
		return err
	}

	title := c.NewParagraph("Placement Report")
	title.SetFont(bold)
	title.SetFontSize(20)
	if err := c.Draw(title); err != nil {
		return err
	}

	sub := c.NewParagraph("Generated " + generatedAt.Format("2 January 2006, 15:04 MST"))
	sub.SetFont(regular)
	sub.SetFontSize(10)
	sub.SetMargins(0, 0, 4, 16)
	if err := c.Draw(sub); err != nil {
		return err
	}

	if err := drawHeading(c, bold, "Overview"); err != nil {
		return err
	}
	overview := [][2]string{
		{"Total candidates", fmt.Sprintf("%d", r.Overall.TotalCandidates)},
		{"Placed", fmt.Sprintf("%d", r.Overall.Placed)},
		{"Unplaced", fmt.Sprintf("%d", r.Overall.Unplaced)},
		{"Placement rate", fmt.Sprintf("%.1f%%", r.Overall.PlacementRate)},
		{"Open postings", fmt.Sprintf("%d", r.Overall.OpenPostings)},
		{"Applications", fmt.Sprintf("%d", r.Overall.Applications)},
		{"Companies", fmt.Sprintf("%d", r.Overall.Companies)},
	}
	if err := drawPairs(c, regular, overview); err != nil {
		return err
	}

	if err := drawHeading(c, bold, "Branch-wise placement"); err != nil {
		return err
	}
	branchTable := c.NewTable(4)
	if err := row(c, branchTable, bold, "Branch", "Candidates", "Placed", "Rate"); err != nil {
		return err
	}
	for _, b := range r.Branches {
		if err := row(c, branchTable, regular,
			b.Branch,
			fmt.Sprintf("%d", b.Total),
			fmt.Sprintf("%d", b.Placed),
			fmt.Sprintf("%.1f%%", b.PlacementRate)); err != nil {
			return err
		}
	}
	if err := c.Draw(branchTable); err != nil {
		return err
	}

	if err := drawHeading(c, bold, "Package (LPA)"); err != nil {
		return err
	}
	pkg := [][2]string{
		{"Minimum", fmt.Sprintf("%.2f", r.Packages.Min)},
		{"Maximum", fmt.Sprintf("%.2f", r.Packages.Max)},
		{"Average", fmt.Sprintf("%.2f", r.Packages.Avg)},
	}
	if err := drawPairs(c, regular, pkg); err != nil {
		return err
	}

	if len(r.TopCompanies) > 0 {
		if err := drawHeading(c, bold, "Top recruiters"); err != nil {
			return err
		}
		top := c.NewTable(2)
		if err := row(c, top, bold, "Company", "Hires"); err != nil {
			return err
		}
		for _, t := range r.TopCompanies {
			if err := row(c, top, regular, t.Name, fmt.Sprintf("%d", t.Hires)); err != nil {
				return err
			}
		}
		if err := c.Draw(top); err != nil {
			return err
		}
	}

	return c.Write(w)
}

func drawHeading(c *creator.Creator, font *model.PdfFont, text string) error {
	h := c.NewParagraph(text)
	h.SetFont(font)
	h.SetFontSize(13)
	h.SetMargins(0, 0, 14, 6)
	return c.Draw(h)
}

func drawPairs(c *creator.Creator, font *model.PdfFont, pairs [][2]string) error {
	t := c.NewTable(2)
	for _, kv := range pairs {
		if err := row(c, t, font, kv[0], kv[1]); err != nil {
			return err
		}
	}
	return c.Draw(t)
}

func row(c *creator.Creator, t *creator.Table, font *model.PdfFont, cols ...string) error {
	for _, col := range cols {
		p := c.NewParagraph(col)
		p.SetFont(font)
		p.SetFontSize(10)
		cell := t.NewCell()
		cell.SetBorder(creator.CellBorderSideAll, creator.CellBorderStyleSingle, 1)
		if err := cell.SetContent(p); err != nil {
			return err
		}
	}
	return nil
}
