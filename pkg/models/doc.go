// Package models provides shared data models for exgen.
//
// These types flow between the wizard, the registry resolver, the
// template renderer, and the project writer. They carry no behavior
// beyond plain data so every layer can depend on them without cycles.
package models
