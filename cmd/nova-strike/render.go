package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/nova-strike/core"
	"github.com/lixenwraith/nova-strike/vmath"
)

var (
	styleDefault = tcell.StyleDefault
	stylePlayer  = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleShot    = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleFlash   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleHUD     = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	styleBanner  = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	styleOverlay = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy)
)

// variantGlyph maps enemy kinds to their on-screen rune and color
func variantGlyph(v core.BehaviorVariant) (rune, tcell.Style) {
	switch v {
	case core.VariantChaser:
		return 'c', styleDefault.Foreground(tcell.ColorRed)
	case core.VariantTank:
		return 'T', styleDefault.Foreground(tcell.ColorMaroon)
	case core.VariantSniper:
		return 's', styleDefault.Foreground(tcell.ColorFuchsia)
	case core.VariantKamikaze:
		return 'k', styleDefault.Foreground(tcell.ColorOrange)
	case core.VariantSwarm:
		return 'w', styleDefault.Foreground(tcell.ColorOlive)
	case core.VariantBerserker:
		return 'B', styleDefault.Foreground(tcell.ColorRed).Bold(true)
	case core.VariantNecromancer:
		return 'N', styleDefault.Foreground(tcell.ColorPurple)
	case core.VariantBoss:
		return '@', styleDefault.Foreground(tcell.ColorYellow).Bold(true)
	}
	return '?', styleDefault
}

func (g *game) render() {
	g.screen.Clear()
	w, h := g.screen.Size()

	// Camera follows the player; terminal cells are taller than wide, so
	// X is stretched by two cells per world unit
	toScreen := func(p vmath.Vec2) (int, int) {
		d := p.Sub(g.playerPos)
		return w/2 + int(d.X*2), h/2 + int(d.Y)
	}

	now := g.world.Resources.Clock.Now()

	for _, p := range g.projectiles {
		x, y := toScreen(p.pos)
		if x < 0 || x >= w || y < 1 || y >= h {
			continue
		}
		r := '*'
		if p.fromPlayer {
			r = '·'
		}
		g.screen.SetContent(x, y, r, nil, styleShot)
	}

	for _, e := range g.world.Enemies() {
		if !e.Alive {
			continue
		}
		x, y := toScreen(e.Pos)
		if x < 0 || x >= w || y < 1 || y >= h {
			continue
		}
		r, style := variantGlyph(e.Def.VariantTag)
		if now < e.FlashUntil {
			style = styleFlash
		}
		g.screen.SetContent(x, y, r, nil, style)
	}

	if !g.gameOver {
		g.screen.SetContent(w/2, h/2, '▲', nil, stylePlayer)
	}

	g.renderHUD(w)
	if g.banner != "" && now < g.bannerUntil {
		drawText(g.screen, (w-len(g.banner))/2, 2, styleBanner, g.banner)
	}
	if g.choices != nil {
		g.renderChoices(w, h)
	}
	if g.gameOver {
		g.renderGameOver(w, h)
	}
	if g.world.Resources.Clock.IsPaused() && g.choices == nil && !g.gameOver {
		drawText(g.screen, (w-8)/2, h/2-2, styleBanner, "- pause -")
	}

	g.screen.Show()
}

func (g *game) renderHUD(w int) {
	ints := g.world.Resources.Status.Ints
	hud := fmt.Sprintf("wave %d [%s]  hp %.0f  score %d  lvl %d  xp %d/%d  alive %d",
		ints.Get("wave.number").Load(),
		g.world.Resources.Status.Strings.Get("wave.phase").Load(),
		g.playerHealth,
		g.score,
		g.upgrades.Level(),
		g.upgrades.XP(), g.upgrades.XPToNext(),
		ints.Get("enemies.alive").Load(),
	)
	if len(hud) > w {
		hud = hud[:w]
	}
	drawText(g.screen, 0, 0, styleHUD, hud)
}

func (g *game) renderChoices(w, h int) {
	lines := []string{"LEVEL UP - choose an upgrade"}
	for i, id := range g.choices {
		name := id
		if def, ok := g.upgrades.Catalog().Get(id); ok {
			name = fmt.Sprintf("%s (%s)", def.Name, def.Rarity)
		}
		lines = append(lines, fmt.Sprintf(" %d. %s", i+1, name))
	}
	lines = append(lines, fmt.Sprintf(" r. reroll (%d score)", g.upgrades.RerollCost()))
	drawBox(g.screen, w, h, lines)
}

func (g *game) renderGameOver(w, h int) {
	best := g.store.Best()
	lines := []string{
		"GAME OVER",
		fmt.Sprintf(" score %d", g.score),
		fmt.Sprintf(" best  %d (wave %d)", best.HighScore, best.HighWave),
	}
	if g.newBest {
		lines = append(lines, " new record!")
	}
	lines = append(lines, "", " n. new game   q. quit")
	drawBox(g.screen, w, h, lines)
}

// drawBox centers a bordered text block on screen
func drawBox(s tcell.Screen, w, h int, lines []string) {
	width := 0
	for _, l := range lines {
		if len(l) > width {
			width = len(l)
		}
	}
	width += 4
	top := h/2 - len(lines)/2 - 1
	left := (w - width) / 2

	for row := 0; row < len(lines)+2; row++ {
		for col := 0; col < width; col++ {
			s.SetContent(left+col, top+row, ' ', nil, styleOverlay)
		}
	}
	for i, l := range lines {
		drawText(s, left+2, top+1+i, styleOverlay, l)
	}
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range text {
		s.SetContent(x+i, y, r, nil, style)
	}
}
