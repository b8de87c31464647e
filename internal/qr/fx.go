package qr

import "go.uber.org/fx"

// Module provides the QR renderer.
var Module = fx.Module("qr",
	fx.Provide(NewRenderer),
)
