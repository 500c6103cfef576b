// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the setcache command runtime.
//
// It wires the set service, the local sync engine and the background
// workers into a single process lifecycle.
package client
