// Package textutil provides filename sanitization for chapter titles.
package textutil
