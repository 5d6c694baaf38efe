package directory

import (
	"math"
	"strconv"
	"strings"
)

const (
	colorNoRank    = "#ffffff"
	colorRank1     = "#c6efce" // light green
	colorRank2     = "#ffeb9c" // light yellow
	colorRank3     = "#ffc7ce" // light red
	colorRank4     = "#bdd7ee" // light blue
	colorOtherRank = "#eeeeee"
)

// RankColor 排名单元格到背景色，任何输入都有结果
func RankColor(cell string) string {
	rank, ok := parseRank(cell)
	if !ok {
		return colorNoRank
	}
	return colorForRank(rank)
}

func colorForRank(rank int) string {
	switch rank {
	case 1:
		return colorRank1
	case 2:
		return colorRank2
	case 3:
		return colorRank3
	case 4:
		return colorRank4
	default:
		return colorOtherRank
	}
}

// parseRank 单元格按整数解读；数值单元格（如 "2.0"）截断取整
func parseRank(cell string) (int, bool) {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return 0, false
	}
	if i, err := strconv.Atoi(cell); err == nil {
		return i, true
	}
	return truncateNumber(cell)
}

// truncateNumber 解析为浮点后向零截断；NaN/Inf/超出 int 范围视为无法解析
func truncateNumber(s string) (int, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	t := math.Trunc(f)
	if t > math.MaxInt32 || t < math.MinInt32 {
		return 0, false
	}
	return int(t), true
}
