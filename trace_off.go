//go:build !ber_debug

package ber

func trace(Tag, string) {}
