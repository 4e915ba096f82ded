package restapi

import (
	"embed"
	"html/template"
	"math/big"
	"strconv"
	"time"

	"enterl2_explorer/internal/domain/entity"
	"enterl2_explorer/internal/pkg/utils"

	jsoniter "github.com/json-iterator/go"
)

//go:embed templates/*.html
var templateFS embed.FS

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// toFloat accepts the numeric shapes the entities use. Nil pointers and non-numbers are 0.
func toFloat(v any) float64 {
	switch n := v.(type) {
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case uint64:
		return float64(n)
	case float64:
		return n
	case *uint64:
		if n != nil {
			return float64(*n)
		}
	case *int64:
		if n != nil {
			return float64(*n)
		}
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err == nil {
			return f
		}
	}
	return 0
}

func formatNumber(v any, decimals ...int) string {
	switch n := v.(type) {
	case uint64:
		return utils.FormatInteger(n)
	case *uint64:
		if n != nil {
			return utils.FormatInteger(*n)
		}
	case string:
		return utils.FormatNumberString(n)
	}
	d := int32(0)
	if len(decimals) > 0 {
		d = int32(decimals[0])
	}
	return utils.FormatNumber(toFloat(v), d)
}

func formatEther(v any) string {
	switch wei := v.(type) {
	case string:
		return utils.FormatEther(wei)
	case *big.Int:
		return utils.FormatEtherBig(wei)
	}
	return "0"
}

func statusClass(status entity.TransactionStatus) string {
	switch status {
	case entity.TransactionStatusConfirmed:
		return "status-confirmed"
	case entity.TransactionStatusPending:
		return "status-pending"
	case entity.TransactionStatusFailed:
		return "status-failed"
	default:
		return "status-unknown"
	}
}

func rawJSON(v any) string {
	b, err := jsonAPI.MarshalIndent(v, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(b)
}

// templateFuncs builds the helpers available to every page. now is the clock of relative times.
func templateFuncs(now func() time.Time) template.FuncMap {
	return template.FuncMap{
		"formatNumber":   formatNumber,
		"formatCurrency": utils.FormatCurrency,
		"formatDuration": utils.FormatDuration,
		"formatChange":   utils.FormatChange,
		"truncate":       utils.TruncateAddress,
		"capitalize":     utils.Capitalize,
		"ether":          formatEther,
		"statusClass":    statusClass,
		"rawJSON":        rawJSON,
		"timeAgo": func(ts any) string {
			if unix := int64(toFloat(ts)); unix > 0 {
				return utils.TimeAgo(unix, now())
			}
			return "Pending"
		},
		"isExpired": func(info *entity.NameInfo) bool { return info != nil && info.IsExpired(now()) },
		"inc":       func(n int) int { return n + 1 },
		"dec":       func(n int) int { return n - 1 },
	}
}

func parseTemplates(now func() time.Time) *template.Template {
	return template.Must(template.New("").Funcs(templateFuncs(now)).ParseFS(templateFS, "templates/*.html"))
}
