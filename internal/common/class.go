package common

import "strings"

// UnknownStr is the String() form of out-of-range enum values.
const UnknownStr = "unknown"

// NormalizeClassName converts an internal class name ("net/minecraft/world/Entity")
// to its dotted form ("net.minecraft.world.Entity"). Dotted names are returned unchanged.
func NormalizeClassName(name string) string {
	return strings.ReplaceAll(name, "/", ".")
}
