package ui

import (
	"gold-miner/internal/config"
	"gold-miner/pkg/render"
)

// Notice dims the screen and shows a centred title with a few lines under it.
type Notice struct {
	Title string
	Lines []string
}

func (n *Notice) Draw(surface render.Surface) {
	w, h := surface.Size()
	cx, cy := float64(w)/2, float64(h)/2

	surface.BeginPath()
	surface.Rect(0, 0, float64(w), float64(h))
	surface.Fill(config.OverlayColor)

	surface.FillText(n.Title, cx-TextWidth(n.Title, config.NoticeTitleSize)/2, cy-10, config.NoticeTitleSize, config.TextLightColor)
	y := cy + 10 + config.NoticeTextSize
	for _, line := range n.Lines {
		surface.FillText(line, cx-TextWidth(line, config.NoticeTextSize)/2, y, config.NoticeTextSize, config.TextLightColor)
		y += config.NoticeTextSize * 1.4
	}
}
