// internal/config/config.go
package config

import (
	"image/color"
	"math"
)

const (
	ScreenWidth  = 800
	ScreenHeight = 600
	WindowTitle  = "Gold Miner"
	MaxDeltaTime = 0.06
	TargetFPS    = 60

	ClickCooldown = 300 // ms

	// Крюк
	HookAnchorY      = 50.0
	HookMinLength    = 50
	HookStep         = 5
	HookAngleSpeed   = 0.02
	HookInitialAngle = math.Pi / 4
	HookLineWidth    = 4.0
	HookTipRadius    = 5.0

	// Минералы
	MineralCount      = 10
	MineralSize       = 30.0
	MineralMarginX    = 25.0
	MineralTopReserve = 200.0
	MineralStroke     = 1.0

	FeedbackFade     = 0.02
	FeedbackRise     = 1.0
	FeedbackFontSize = 20.0

	ScoreX        = 10.0
	ScoreY        = 30.0
	ScoreFontSize = 20.0

	TextCharWidth = 0.6 // ширина символа относительно размера шрифта

	IndicatorOffsetX = 30
	IndicatorRadius  = 10.0

	// Кнопки отсчитываются от правого края поля
	ButtonWidth        = 90.0
	ButtonHeight       = 28.0
	ButtonFontSize     = 16.0
	ButtonY            = 16.0
	StartButtonOffsetX = 300.0
	StopButtonOffsetX  = 200.0
	PauseButtonOffsetX = 70.0
	PauseButtonY       = 30.0
	PauseButtonR       = 10.0

	NoticeTitleSize = 40.0
	NoticeTextSize  = 20.0
)

var (
	BackgroundColor   = color.RGBA{250, 240, 215, 255}
	HookColor         = color.RGBA{139, 69, 19, 255} // #8B4513
	GoldColor         = color.RGBA{255, 215, 0, 255} // #FFD700
	MineralStrokeClr  = color.RGBA{0, 0, 0, 255}
	ScoreColor        = color.RGBA{20, 20, 30, 255}
	FeedbackColor     = color.RGBA{0, 128, 0, 255}
	TextLightColor    = color.RGBA{240, 240, 240, 255}
	TextDarkColor     = color.RGBA{20, 20, 30, 255}
	OverlayColor      = color.RGBA{0, 0, 0, 160}
	ButtonColor       = color.RGBA{70, 130, 180, 255}
	ButtonStopColor   = color.RGBA{220, 60, 60, 255}
	ButtonStrokeColor = color.RGBA{240, 240, 240, 255}

	RunningColor = color.RGBA{50, 205, 50, 255}
	PausedColor  = color.RGBA{194, 178, 128, 255}
	StoppedColor = color.RGBA{220, 60, 60, 255}
)
