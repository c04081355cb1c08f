// Package terminal is the driver boundary between the layout engine and the
// physical terminal. It wraps tcell behind the narrow capability surface the
// engine needs: raw-mode lifecycle, screen size, non-blocking key polling,
// and surface handles that draw borders, titles and clipped text.
//
// The real screen comes from New; tests use NewSimulation, which drives the
// same code over a tcell simulation screen.
package terminal
