package cli

import (
	"context"
	"fmt"
	"strings"
)

type qb struct {
	name string
	team string
	att  int
	yds  int
	td   int
	rate string
	qbr  string
}

// seasonPage renders a minimal 2006+ passing page around players.
func seasonPage(players ...qb) string {
	var b strings.Builder
	b.WriteString(`<html><body><table id="passing"><thead><tr>`)
	b.WriteString("<th>Rk</th><th>Player</th>")
	for i := 2; i < 30; i++ {
		fmt.Fprintf(&b, "<th>h%d</th>", i)
	}
	b.WriteString("</tr></thead><tbody>")

	for i, p := range players {
		cells := make([]string, 30)
		for j := range cells {
			cells[j] = "0"
		}
		cells[0] = fmt.Sprint(i + 1)
		cells[1] = p.name
		cells[3] = p.team
		cells[9] = fmt.Sprint(p.att)
		cells[11] = fmt.Sprintf("%d,%03d", p.yds/1000, p.yds%1000)
		if p.yds < 1000 {
			cells[11] = fmt.Sprint(p.yds)
		}
		cells[12] = fmt.Sprint(p.td)
		cells[23] = p.rate
		cells[24] = p.qbr

		b.WriteString("<tr>")
		for j, c := range cells {
			if j == 0 {
				fmt.Fprintf(&b, "<th>%s</th>", c)
				continue
			}
			fmt.Fprintf(&b, "<td>%s</td>", c)
		}
		b.WriteString("</tr>")
	}
	b.WriteString("</tbody></table></body></html>")
	return b.String()
}

func samplePage() string {
	return seasonPage(
		qb{name: "Tua Tagovailoa", team: "MIA", att: 560, yds: 4624, td: 29, rate: "101.1", qbr: "60.9"},
		qb{name: "Jared Goff", team: "DET", att: 605, yds: 4575, td: 30, rate: "97.9", qbr: "59.6"},
		qb{name: "Dak Prescott", team: "DAL", att: 590, yds: 4516, td: 36, rate: "105.9", qbr: "72.7"},
		qb{name: "Joshua Dobbs", team: "ARI", att: 237, yds: 1464, td: 8, rate: "80.0", qbr: "40.0"},
		qb{name: "Joshua Dobbs", team: "MIN", att: 179, yds: 1104, td: 5, rate: "78.0", qbr: "45.0"},
		qb{name: "Joshua Dobbs", team: "2TM", att: 417, yds: 2568, td: 13, rate: "80.3", qbr: "42.1"},
		qb{name: "Clipboard Holder", team: "NYG", att: 12, yds: 80, td: 0, rate: "40.0", qbr: "10.0"},
	)
}

type pageFetcher struct {
	pages map[int]string
	calls int
}

func (f *pageFetcher) Fetch(_ context.Context, year int) (string, error) {
	f.calls++
	page, ok := f.pages[year]
	if !ok {
		return "", fmt.Errorf("HTTP 404")
	}
	return page, nil
}
