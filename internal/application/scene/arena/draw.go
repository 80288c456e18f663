package arena

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/younwookim/brawl/internal/application/state"
	"github.com/younwookim/brawl/internal/domain/entity"
)

// Colors for rendering
var (
	colorBG         = color.RGBA{26, 26, 46, 255}
	colorWall       = color.RGBA{80, 80, 100, 255}
	colorPlatform   = color.RGBA{110, 90, 70, 255}
	colorPlayer     = color.RGBA{100, 200, 100, 255}
	colorPlayerHit  = color.RGBA{255, 255, 255, 200}
	colorAttack     = color.RGBA{255, 255, 100, 128}
	colorFlash      = color.RGBA{255, 255, 255, 255}
	colorBossAttack = color.RGBA{255, 60, 60, 140}
	colorProjectile = color.RGBA{255, 200, 100, 255}
	colorEnemyShot  = color.RGBA{255, 100, 100, 255}
	colorGem        = color.RGBA{120, 220, 255, 255}
	colorBanana     = color.RGBA{255, 230, 80, 255}
	colorCoconut    = color.RGBA{140, 90, 50, 255}
	colorHealthBG   = color.RGBA{60, 60, 60, 255}
	colorHealthFG   = color.RGBA{100, 200, 100, 255}
	colorFrame      = color.RGBA{255, 255, 255, 24}
)

// frameSpecs place a nominal sprite frame around each archetype's hitbox
var frameSpecs = map[entity.Archetype]entity.DrawSpec{
	entity.ArchetypeCrab:    {OffsetX: 4, OffsetY: 8, Width: 32, Height: 24},
	entity.ArchetypeBoar:    {OffsetX: 4, OffsetY: 10, Width: 40, Height: 32},
	entity.ArchetypeMonkey:  {OffsetX: 5, OffsetY: 6, Width: 32, Height: 32},
	entity.ArchetypePanther: {OffsetX: 12, OffsetY: 18, Width: 64, Height: 48},
	entity.ArchetypeGorilla: {OffsetX: 8, OffsetY: 20, Width: 64, Height: 64},
}

var archetypeColors = map[entity.Archetype]color.RGBA{
	entity.ArchetypeCrab:    {220, 110, 80, 255},
	entity.ArchetypeBoar:    {160, 100, 70, 255},
	entity.ArchetypeMonkey:  {190, 150, 90, 255},
	entity.ArchetypePanther: {90, 60, 140, 255},
	entity.ArchetypeGorilla: {100, 100, 110, 255},
}

// Draw implements scene.Scene
func (a *Arena) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	camX, camY := a.camera(w, h)

	a.drawTiles(screen, camX, camY, w, h)
	a.drawPickups(screen, camX, camY)
	a.drawGems(screen, camX, camY)
	a.drawEnemies(screen, camX, camY)
	a.drawBosses(screen, camX, camY)
	a.drawProjectiles(screen, camX, camY)
	a.drawPlayer(screen, camX, camY)

	a.drawUI(screen, h)

	switch a.state {
	case state.StatePaused:
		drawOverlay(screen, w, h, color.RGBA{0, 0, 0, 128}, "PAUSED\n\nPress ESC to resume")
	case state.StateGameOver:
		drawOverlay(screen, w, h, color.RGBA{100, 0, 0, 180},
			fmt.Sprintf("GAME OVER\n\nKills: %d  Gems: %d\n\nPress J to restart", a.stats.Kills, a.stats.Gems))
	case state.StateStageClear:
		drawOverlay(screen, w, h, color.RGBA{0, 60, 0, 160},
			fmt.Sprintf("STAGE CLEAR\n\nKills: %d  Bosses: %d  Gems: %d\n\nPress J to replay",
				a.stats.Kills, a.stats.BossKills, a.stats.Gems))
	}
}

// camera centers on the player, shakes, and clamps to the level
func (a *Arena) camera(w, h int) (int, int) {
	camX := int(a.player.Hitbox.CenterX()) - w/2
	camY := int(a.player.Hitbox.CenterY()) - h/2

	if a.shake > 0.5 {
		camX += int(a.shake * (2*a.shakeRNG.Float64() - 1))
		camY += int(a.shake * (2*a.shakeRNG.Float64() - 1))
	}

	grid := a.level.Grid
	maxCamX := int(grid.PixelWidth()) - w
	maxCamY := int(grid.PixelHeight()) - h
	camX = min(max(camX, 0), max(maxCamX, 0))
	camY = min(max(camY, 0), max(maxCamY, 0))
	return camX, camY
}

func (a *Arena) drawTiles(screen *ebiten.Image, camX, camY, w, h int) {
	grid := a.level.Grid
	if !grid.Valid() {
		return
	}
	ts := grid.TileSize

	startX, startY := camX/ts, camY/ts
	endX, endY := (camX+w)/ts+1, (camY+h)/ts+1

	for ty := startY; ty <= endY && ty < grid.Height(); ty++ {
		for tx := startX; tx <= endX && tx < grid.Width(); tx++ {
			code, ok := grid.Code(tx, ty)
			if !ok || !entity.IsSolidCode(code) {
				continue
			}
			c := colorWall
			if code > 0 {
				c = colorPlatform
			}
			ebitenutil.DrawRect(screen, float64(tx*ts-camX), float64(ty*ts-camY), float64(ts), float64(ts), c)
		}
	}
}

func (a *Arena) drawPickups(screen *ebiten.Image, camX, camY int) {
	for _, p := range a.level.Bananas {
		ebitenutil.DrawRect(screen, p.X-float64(camX)-3, p.Y-float64(camY)-6, 6, 6, colorBanana)
	}
	for _, p := range a.level.Coconuts {
		ebitenutil.DrawRect(screen, p.X-float64(camX)-3, p.Y-float64(camY)-6, 6, 6, colorCoconut)
	}
}

func (a *Arena) drawGems(screen *ebiten.Image, camX, camY int) {
	amp := a.cfg.Gem.FloatAmplitude
	for _, g := range a.enemies.Gems() {
		if !g.Active {
			continue
		}
		hb := g.Hitbox
		w, h := hb.Width*g.BreathScale, hb.Height*g.BreathScale
		x := hb.CenterX() - w/2 - float64(camX)
		y := hb.Bottom() - h - float64(camY) + g.FloatOffset(amp)
		ebitenutil.DrawRect(screen, x, y, w, h, colorGem)
	}
}

func (a *Arena) drawEnemies(screen *ebiten.Image, camX, camY int) {
	for _, e := range a.enemies.AllEnemies() {
		c := archetypeColors[e.Archetype]
		if e.State == entity.EnemyHurt && e.StateTimer%4 < 2 {
			c = colorFlash
		}
		if e.State == entity.EnemyDying {
			c.A = 96
		}
		drawFrame(screen, &e.Actor, camX, camY)
		drawBox(screen, e.Hitbox, camX, camY, c)
		drawFacing(screen, e.Hitbox, e.Facing, camX, camY)
	}
}

func (a *Arena) drawBosses(screen *ebiten.Image, camX, camY int) {
	for _, b := range a.enemies.Bosses() {
		c := archetypeColors[b.Archetype]
		switch b.Action {
		case entity.BossHurt:
			if b.ActionTimer%4 < 2 {
				c = colorFlash
			}
		case entity.BossDying:
			c.A = 96
		}
		drawFrame(screen, &b.Actor, camX, camY)
		drawBox(screen, b.Hitbox, camX, camY, c)
		drawFacing(screen, b.Hitbox, b.Facing, camX, camY)
		if b.AttackBox != nil {
			drawBox(screen, *b.AttackBox, camX, camY, colorBossAttack)
		}

		// health bar above the boss
		x := b.Hitbox.X - float64(camX)
		y := b.Hitbox.Y - float64(camY) - 6
		ebitenutil.DrawRect(screen, x, y, b.Hitbox.Width, 3, colorHealthBG)
		ebitenutil.DrawRect(screen, x, y, b.Hitbox.Width*b.Health.Ratio(), 3, colorBossAttack)
		ebitenutil.DebugPrintAt(screen, b.Action.String(), int(x), int(y)-14)
	}
}

func (a *Arena) drawProjectiles(screen *ebiten.Image, camX, camY int) {
	for _, p := range a.enemies.Projectiles() {
		if !p.Active {
			continue
		}
		c := colorEnemyShot
		if p.FromPlayer() {
			c = colorProjectile
		}
		drawBox(screen, p.Hitbox, camX, camY, c)
	}
}

func (a *Arena) drawPlayer(screen *ebiten.Image, camX, camY int) {
	p := a.player
	c := colorPlayer
	if p.IsDamaged() && p.HitStun%4 < 2 {
		c = colorPlayerHit
	}
	drawBox(screen, p.Hitbox, camX, camY, c)
	drawFacing(screen, p.Hitbox, p.Facing, camX, camY)

	if _, _, box := p.CurrentAttack(); box != nil {
		drawBox(screen, *box, camX, camY, colorAttack)
	}
}

func (a *Arena) drawUI(screen *ebiten.Image, h int) {
	barX, barY := 10.0, float64(h-20)
	barW, barH := 100.0, 10.0
	ebitenutil.DrawRect(screen, barX, barY, barW, barH, colorHealthBG)
	ebitenutil.DrawRect(screen, barX, barY, barW*a.player.Health.Ratio(), barH, colorHealthFG)

	status := fmt.Sprintf("Gems: %d  Kills: %d  Left: %d", a.player.Gems, a.stats.Kills, a.enemies.Remaining())
	if a.abilities.Has(entity.AbilityThrow) {
		status += "  [throw]"
	}
	if a.abilities.Has(entity.AbilitySlide) {
		status += "  [slide]"
	}
	ebitenutil.DebugPrintAt(screen, status, 10, h-35)

	ebitenutil.DebugPrint(screen, "A/D: Move | W: Jump | J: Attack | K: Throw | ESC: Pause")
}

func drawOverlay(screen *ebiten.Image, w, h int, bg color.RGBA, text string) {
	ebitenutil.DrawRect(screen, 0, 0, float64(w), float64(h), bg)
	ebitenutil.DebugPrintAt(screen, text, w/2-70, h/2-30)
}

func drawBox(screen *ebiten.Image, hb entity.Hitbox, camX, camY int, c color.Color) {
	ebitenutil.DrawRect(screen, hb.X-float64(camX), hb.Y-float64(camY), hb.Width, hb.Height, c)
}

// drawFrame outlines where the actor's sprite would sit
func drawFrame(screen *ebiten.Image, a *entity.Actor, camX, camY int) {
	spec, ok := frameSpecs[a.Archetype]
	if !ok {
		return
	}
	x, y, w, h := a.Hitbox.DrawRect(spec, a.Facing)
	ebitenutil.DrawRect(screen, x-float64(camX), y-float64(camY), w, h, colorFrame)
}

// drawFacing marks the leading edge with a short line
func drawFacing(screen *ebiten.Image, hb entity.Hitbox, f entity.Facing, camX, camY int) {
	x := hb.Right() - float64(camX)
	if f == entity.FacingLeft {
		x = hb.X - float64(camX)
	}
	y := hb.CenterY() - float64(camY)
	ebitenutil.DrawLine(screen, x, y-3, x, y+3, colorFlash)
}
