// Package mapping holds the immutable mapping tables the resolver reads, and
// the YAML file format they are loaded from.
//
// A Table joins three naming schemes:
//
//	intermediate scheme  <--Intermediate members-->  canonical scheme
//	canonical scheme     <--Runtime members------->  runtime scheme
//
// Classes are translated between the intermediate and canonical schemes by a
// bidirectional ClassDictionary. Member entries carry the owning class, a
// descriptor (methods), the name in the table's own scheme and the canonical
// name that bridges the two member tables.
//
// # File format
//
//	version: "1"
//	classes:
//	  org.bukkit.craftbukkit.Entity: net.minecraft.world.Entity
//	intermediate:
//	  fields:
//	    - owner: org.bukkit.craftbukkit.Entity
//	      name: world
//	      canonical: level
//	  methods:
//	    # compact form: owner name canonical descriptor
//	    - org.bukkit.craftbukkit.Entity doTick tick ()V
//	runtime:
//	  fields:
//	    - net.minecraft.world.Entity a level
//	  methods:
//	    - owner: net.minecraft.world.Entity
//	      name: b
//	      canonical: tick
//	      descriptor: ()V
//
// Class names may use either '/' or '.' separators; they are stored dotted.
// Entry order is preserved: lookups take the first matching entry.
//
// Files are loaded once and never mutated afterwards. Validate performs a
// structural check only (required fields, descriptor syntax, dictionary
// collisions); it does not try to prove the tables consistent.
package mapping
