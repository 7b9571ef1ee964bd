// Package palette loads Base16 color schemes from X resources defaults files.
// Schemes are read from ~/.Xdefaults by default, where each slot is declared
// with a cpp-style "#define base0X #rrggbb" directive.
package palette
