package main

import "seekbox/internal/catalog"

// sampleItems is the catalog served when no source path is configured.
func sampleItems() []catalog.Item {
	return []catalog.Item{
		{ID: "go", Name: "Go", Description: "Statically typed, compiled language with **goroutines** and channels."},
		{ID: "rust", Name: "Rust", Description: "Systems language with an *ownership* model and no garbage collector."},
		{ID: "python", Name: "Python", Description: "Dynamically typed scripting language.\n\n- batteries included\n- indentation matters"},
		{ID: "typescript", Name: "TypeScript", Description: "JavaScript with a structural type system."},
		{ID: "javascript", Name: "JavaScript", Description: "The language of the browser."},
		{ID: "java", Name: "Java", Description: "Class-based language running on the JVM."},
		{ID: "kotlin", Name: "Kotlin", Description: "Concise JVM language with null safety."},
		{ID: "swift", Name: "Swift", Description: "Apple's general purpose language."},
		{ID: "haskell", Name: "Haskell", Description: "Lazy, purely functional language."},
		{ID: "ocaml", Name: "OCaml", Description: "ML dialect with a fast native compiler."},
		{ID: "elixir", Name: "Elixir", Description: "Functional language on the BEAM VM."},
		{ID: "erlang", Name: "Erlang", Description: "Language and runtime for fault tolerant systems."},
		{ID: "zig", Name: "Zig", Description: "Low level language with `comptime`."},
		{ID: "c", Name: "C", Description: "Portable assembly."},
		{ID: "cpp", Name: "C++", Description: "C with classes, templates and much more."},
		{ID: "csharp", Name: "C#", Description: "Managed language on .NET."},
		{ID: "ruby", Name: "Ruby", Description: "Object oriented scripting language."},
		{ID: "lua", Name: "Lua", Description: "Small embeddable scripting language."},
		{ID: "scala", Name: "Scala", Description: "Functional and object oriented JVM language."},
		{ID: "clojure", Name: "Clojure", Description: "Lisp on the JVM."},
	}
}
