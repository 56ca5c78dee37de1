// Package textutil generates placeholder text and URL slugs.
package textutil
