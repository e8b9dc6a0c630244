package scene

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"math"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/ncruces/zenity"
	"go.uber.org/zap"

	"neonsigil/internal/config"
	"neonsigil/internal/timing"
)

const (
	ornamentCount      = 8
	ornamentRingFactor = 0.28 // placement radius as a fraction of min(w, h)
)

// App is the host shell: one MandalaBase background with a crown of Ornament
// instances composited on top, rotated to face outward. It owns the shared
// frame scheduler (the ebiten game loop), keyboard handling, and screenshot
// export.
type App struct {
	log   *zap.Logger
	clock timing.Clock

	cfg       config.Ornament
	mandala   *MandalaBase
	ornaments []*Ornament

	prevKey map[ebiten.Key]bool

	w, h  int
	scale float64

	captureNext bool
	shot        *image.RGBA
	lastErr     error
}

func NewApp(log *zap.Logger, clock timing.Clock, cfg config.Ornament) *App {
	a := &App{
		log:     log,
		clock:   clock,
		cfg:     cfg,
		mandala: NewMandalaBase(clock),
		prevKey: map[ebiten.Key]bool{},
		scale:   1,
	}
	for k := 0; k < ornamentCount; k++ {
		c := cfg
		c.Rotation = cfg.Rotation + a.placementAngle(k) + math.Pi/2
		a.ornaments = append(a.ornaments, NewOrnament(clock, c))
	}
	a.mandala.Mount()
	for _, o := range a.ornaments {
		o.Mount()
	}
	return a
}

// placementAngle is the angle of slot k around the viewport center, starting
// at twelve o'clock.
func (a *App) placementAngle(k int) float64 {
	return -math.Pi/2 + float64(k)*2*math.Pi/ornamentCount
}

// applyConfig pushes the current base configuration to every ornament with
// its per-slot rotation offset, restarting each instance.
func (a *App) applyConfig() {
	for k, o := range a.ornaments {
		c := a.cfg
		c.Rotation = a.cfg.Rotation + a.placementAngle(k) + math.Pi/2
		o.SetConfig(c)
	}
}

func (a *App) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !a.prevKey[k]
		a.prevKey[k] = pressed
		return jp
	}

	if justPressed(ebiten.KeySpace) {
		a.cfg.Pulse = !a.cfg.Pulse
		a.applyConfig()
		a.log.Info("Toggled pulse", zap.Bool("pulse", a.cfg.Pulse))
	}
	if justPressed(ebiten.KeyR) {
		a.cfg.Rotation += math.Pi / 16
		a.applyConfig()
		a.log.Info("Rotated ornaments", zap.Float64("rotation", a.cfg.Rotation))
	}
	if justPressed(ebiten.KeyS) {
		a.captureNext = true
	}
	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	if a.shot != nil {
		shot := a.shot
		a.shot = nil
		if err := a.exportShot(shot); err != nil {
			a.lastErr = err
			a.log.Warn("Screenshot export failed", zap.Error(err))
		}
	}

	a.mandala.Update()
	for _, o := range a.ornaments {
		o.Update()
	}
	return nil
}

func (a *App) Draw(screen *ebiten.Image) {
	a.mandala.Draw(screen)

	cx, cy := a.mandala.Center()
	ringR := math.Min(float64(a.w), float64(a.h)) * ornamentRingFactor
	for k, o := range a.ornaments {
		ang := a.placementAngle(k)
		o.Draw(screen, cx+math.Cos(ang)*ringR, cy+math.Sin(ang)*ringR)
	}

	if a.captureNext {
		a.captureNext = false
		px := make([]byte, 4*a.w*a.h)
		screen.ReadPixels(px)
		a.shot = &image.RGBA{Pix: px, Stride: 4 * a.w, Rect: image.Rect(0, 0, a.w, a.h)}
	}

	status := "Space: pulse  R: rotate  S: screenshot  Esc/Q: quit"
	if a.lastErr != nil {
		status += " | Error: " + a.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 12)
}

// Layout oversamples the screen by the monitor's device scale factor so all
// drawing happens in device pixels, and propagates the new geometry to the
// components.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := ebiten.Monitor().DeviceScaleFactor()
	if s <= 0 {
		s = 1
	}
	w := int(math.Ceil(float64(outsideWidth) * s))
	h := int(math.Ceil(float64(outsideHeight) * s))

	a.w, a.h, a.scale = w, h, s
	a.mandala.Resize(w, h, s)
	for _, o := range a.ornaments {
		o.SetDeviceScale(s)
	}
	return w, h
}

// exportShot asks for a destination via a save dialog and writes the
// captured frame as PNG. A cancelled dialog is not an error.
func (a *App) exportShot(shot *image.RGBA) error {
	name, err := zenity.SelectFileSave(
		zenity.Title("Save Screenshot"),
		zenity.Filename("mandala.png"),
		zenity.ConfirmOverwrite(),
		zenity.FileFilters{{
			Name:     "PNG",
			Patterns: []string{"*.png"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}

	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("create %s: %w", name, err)
	}
	defer f.Close()

	if err := png.Encode(f, shot); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	a.log.Info("Saved screenshot", zap.String("path", name),
		zap.Int("width", shot.Rect.Dx()), zap.Int("height", shot.Rect.Dy()))
	return nil
}
