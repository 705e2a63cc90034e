/*
Package colors draws one triangle whose corner colors are tinted by a
time-varying uniform, using a vertex and a fragment shader.

# Overview

The package is split along the graphics API boundary. Everything that has
a shape of its own lives here: shader compilation, program linking, the
vertex data, the scene's setup and teardown, and the frame loop. The
graphics and windowing calls sit behind the [Device] and [Window]
interfaces, implemented for OpenGL 4.1 and GLFW by package
backend/opengl.

# Quick Start

	ctx, err := opengl.NewContext(colors.DefaultConfig())
	if err != nil {
	    return err
	}
	defer ctx.Close()

	scene, err := colors.NewScene(ctx.Device())
	if err != nil {
	    return err
	}

	colors.NewLoop(ctx.Window(), ctx.Device(), scene).Run()

# Shader pipeline

[CompileShader] returns the shader handle even when compilation fails; the
failure comes back as a [*CompileError] carrying the driver's info log,
bounded to [MaxInfoLogLength] bytes. [LinkProgram] checks the link status
and returns a [*LinkError] on failure, deleting the half-built program.

The fragment output "outColor" is bound to color number 0 before linking,
and the "time" uniform location is resolved once afterwards.

# Frame loop

A [Loop] starts in [StateRunning]. Each [Loop.Step] presents the previous
frame and polls events. If the window was asked to close, or Escape is
held, the loop moves to [StateClosing] and draws nothing more. Otherwise it
clears, sends the time uniform and draws three vertices. [Loop.Run] steps
until Closing and then releases the scene exactly once.

The time uniform never decreases between frames, even if the clock does.

# Ownership

Every device object is wrapped in a typed handle with an idempotent Delete.
[NewScene] releases whatever it acquired if setup fails part way, and
[Scene.Close] only acts on its first call.
*/
package colors
