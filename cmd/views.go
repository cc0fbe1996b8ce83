package cmd

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	enscommon "github.com/tranvictor/enslens/common"
	"github.com/tranvictor/enslens/networks"
	"github.com/tranvictor/enslens/ui"
)

// usdPrinter formats dollar amounts with comma grouping ("$7,500.00").
var usdPrinter = message.NewPrinter(language.English)

func usd(v float64) string {
	return usdPrinter.Sprintf("$%.2f", v)
}

var unavailableText = ui.StyledText{Text: "unavailable", Severity: ui.SeverityError}
var notConfiguredText = ui.StyledText{Text: "not configured", Severity: ui.SeverityWarn}

// absentMarker renders the field marker for a source that produced no data.
// The two absence reasons look different on purpose: "not configured" is a
// setup hint, "unavailable" is a provider problem.
func absentMarker(u ui.UI, status enscommon.SourceStatus) string {
	if status == enscommon.SourceNotConfigured {
		return u.Style(notConfiguredText)
	}
	return u.Style(unavailableText)
}

// the text records worth a line in the profile view, in display order
var textRecordLabels = [][2]string{
	{"avatar", "Avatar"},
	{"display", "Display Name"},
	{"description", "Bio/Description"},
	{"url", "Website"},
	{"email", "Email"},
	{"twitter", "Twitter"},
	{"github", "GitHub"},
	{"discord", "Discord"},
	{"telegram", "Telegram"},
	{"reddit", "Reddit"},
}

func renderProfile(u ui.UI, p *enscommon.Profile) {
	u.Section(fmt.Sprintf("Profile: %s", p.Name))

	rows := [][2]string{
		{"Address", u.Style(ui.StyledText{Text: p.Address, Severity: ui.SeveritySuccess})},
	}
	if p.Nametag != "" {
		rows = append(rows, [2]string{"Nametag", p.Nametag})
	}

	if display, known := p.BalanceDisplay(); known {
		rows = append(rows, [2]string{
			fmt.Sprintf("%s Balance", p.NativeSymbol),
			fmt.Sprintf("%.6f %s", display, p.NativeSymbol),
		})
	} else {
		rows = append(rows, [2]string{
			fmt.Sprintf("%s Balance", p.NativeSymbol),
			absentMarker(u, p.SourceStatus(enscommon.SourceBalance)),
		})
	}

	if p.FiatPrice != nil {
		rows = append(rows, [2]string{
			fmt.Sprintf("%s Price", p.NativeSymbol),
			usd(*p.FiatPrice),
		})
	} else {
		rows = append(rows, [2]string{
			fmt.Sprintf("%s Price", p.NativeSymbol),
			absentMarker(u, p.SourceStatus(enscommon.SourcePrice)),
		})
	}
	if p.FiatValue != nil {
		rows = append(rows, [2]string{"Value", usd(*p.FiatValue)})
	}

	for _, entry := range textRecordLabels {
		if value := p.TextRecords[entry[0]]; value != "" {
			rows = append(rows, [2]string{entry[1], value})
		}
	}
	u.KeyValue(rows)

	renderActivity(u, p)
	renderHoldings(u, p)
	renderSourceFailures(u, p)
}

func renderActivity(u ui.UI, p *enscommon.Profile) {
	status := p.SourceStatus(enscommon.SourceActivity)
	if status != enscommon.SourceOK {
		return
	}
	if len(p.RecentTxs) == 0 {
		u.Info("No recent internal transactions.")
		return
	}
	u.Section("Recent Internal Transactions")
	rows := [][]string{}
	for _, tx := range p.RecentTxs {
		rows = append(rows, []string{
			tx.Hash,
			tx.From,
			tx.To,
			fmt.Sprintf("%s %s", enscommon.BigToFloatString(tx.Value, p.NativeDecimal), p.NativeSymbol),
			time.Unix(tx.Timestamp, 0).UTC().Format("2006-01-02 15:04:05"),
		})
	}
	u.Table([]string{"Hash", "From", "To", "Value", "Time (UTC)"}, rows)
}

func renderHoldings(u ui.UI, p *enscommon.Profile) {
	status := p.SourceStatus(enscommon.SourceHoldings)
	if status != enscommon.SourceOK {
		return
	}
	if len(p.Holdings) == 0 {
		u.Info("No token holdings.")
		return
	}
	u.Section("Token Holdings")
	rows := [][]string{}
	for _, h := range p.Holdings {
		price, value := "-", "-"
		if h.PriceUSD != nil {
			price = usd(*h.PriceUSD)
		}
		if h.ValueUSD != nil {
			value = usd(*h.ValueUSD)
		}
		rows = append(rows, []string{
			h.Symbol,
			h.Name,
			fmt.Sprintf("%.4f", h.DisplayAmount),
			price,
			value,
		})
	}
	u.Table([]string{"Symbol", "Name", "Amount", "Price", "USD Value"}, rows)
}

// renderSourceFailures reports which sources produced no data and why, so
// an absent field is never mistaken for an empty one.
func renderSourceFailures(u ui.UI, p *enscommon.Profile) {
	order := []enscommon.Source{
		enscommon.SourceBalance,
		enscommon.SourcePrice,
		enscommon.SourceActivity,
		enscommon.SourceHoldings,
		enscommon.SourceNametag,
	}
	for _, src := range order {
		result, found := p.Sources[src]
		if !found || result.Status == enscommon.SourceOK {
			continue
		}
		if result.Status == enscommon.SourceNotConfigured {
			u.Warn("%s: not configured", src)
		} else if result.Err != nil {
			u.Error("%s: unavailable (%s)", src, result.Err)
		} else {
			u.Error("%s: unavailable", src)
		}
	}
}

func renderGraph(u ui.UI, g *enscommon.Graph, network networks.Network) {
	u.Info("Graph with %d nodes and %d edges.", len(g.Nodes), len(g.Edges))
	for name, reason := range g.Excluded {
		u.Warn("excluded %s: %s", name, reason)
	}
	if len(g.Nodes) == 0 {
		return
	}
	rows := [][]string{}
	for _, node := range g.Nodes {
		balance := u.Style(unavailableText)
		if node.BalanceWei != nil {
			balance = fmt.Sprintf(
				"%.6f %s",
				enscommon.BigToFloat(node.BalanceWei, network.GetNativeTokenDecimal()),
				network.GetNativeTokenSymbol(),
			)
		}
		rows = append(rows, []string{node.Name, node.Address, balance})
	}
	u.Table([]string{"Name", "Address", "Balance"}, rows)
}
