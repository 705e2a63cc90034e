package colors

// LoopState is the frame loop's state.
type LoopState int

const (
	StateRunning LoopState = iota
	StateClosing
)

func (s LoopState) String() string {
	if s == StateRunning {
		return "running"
	}
	return "closing"
}

// Frame describes one rendered frame.
type Frame struct {
	Index uint64  // Zero-based frame number
	Time  float32 // Time uniform sent this frame
}

// Loop drives the poll-render-swap cycle for one scene.
type Loop struct {
	win        Window
	dev        Device
	scene      *Scene
	clearColor Color
	onFrame    func(Frame)

	state    LoopState
	frames   uint64
	lastTime float32
}

// LoopOption configures a Loop.
type LoopOption func(*Loop)

// WithClearColor sets the color the frame is cleared to.
func WithClearColor(c Color) LoopOption {
	return func(l *Loop) { l.clearColor = c }
}

// WithFrameHook registers fn to be called after every drawn frame.
func WithFrameHook(fn func(Frame)) LoopOption {
	return func(l *Loop) { l.onFrame = fn }
}

// NewLoop creates a loop in the Running state.
func NewLoop(win Window, dev Device, scene *Scene, opts ...LoopOption) *Loop {
	l := &Loop{
		win:        win,
		dev:        dev,
		scene:      scene,
		clearColor: ColorBlack,
		state:      StateRunning,
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// State returns the current loop state.
func (l *Loop) State() LoopState { return l.state }

// Frames returns the number of frames drawn so far.
func (l *Loop) Frames() uint64 { return l.frames }

// Run iterates until the window asks to close or Escape is pressed, then
// releases the scene. It returns the number of frames drawn.
func (l *Loop) Run() uint64 {
	Logger().Info("frame loop started")
	for l.state == StateRunning {
		l.Step()
	}
	l.scene.Close()
	Logger().Info("frame loop finished", "frames", l.frames, "time", l.lastTime)
	return l.frames
}

// Step runs one iteration. It presents the previous frame, polls events,
// and either moves to Closing or draws the next frame.
func (l *Loop) Step() {
	if l.state != StateRunning {
		return
	}

	l.win.SwapBuffers()
	l.win.PollEvents()

	if l.exitRequested() {
		l.win.SetShouldClose(true)
		l.state = StateClosing
		Logger().Debug("close requested", "frame", l.frames)
		return
	}

	l.dev.ClearColor(l.clearColor)
	l.dev.Clear()

	t := l.nextTime()
	l.scene.Program().SetTime(t)
	l.scene.Draw()

	if l.onFrame != nil {
		l.onFrame(Frame{Index: l.frames, Time: t})
	}
	l.frames++
}

func (l *Loop) exitRequested() bool {
	if l.win.ShouldClose() {
		return true
	}
	in := l.win.Input()
	return in != nil && (in.IsKeyDown(KeyEscape) || in.IsKeyPressed(KeyEscape))
}

// nextTime reads the window clock, never stepping backwards.
func (l *Loop) nextTime() float32 {
	t := float32(l.win.Time())
	if t < l.lastTime {
		t = l.lastTime
	}
	l.lastTime = t
	return t
}
