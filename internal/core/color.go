package core

// Color is a foreground color for a screen cell, written as a hex triplet
// ("#6b4f4f"). The empty Color means the terminal default.
type Color string

// ColorDefault leaves the terminal foreground untouched.
const ColorDefault Color = ""
