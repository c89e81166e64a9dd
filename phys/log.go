// Copyright 2024 Scott Lawson scottlawsonbc@gmail.com. All rights reserved.

package phys

import "go.uber.org/zap"

// logger is the package-wide structured logger. Production code paths
// (scene registration, render-time anomaly reporting) log through it
// instead of the standard library so every message carries consistent
// level, timestamp, and caller metadata.
var logger = zap.Must(zap.NewProduction()).Sugar()
