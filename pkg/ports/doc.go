/*
Package ports defines the driven ports (interfaces) for the orderbot engine.

These interfaces decouple the graph executor from the terminal and from the
remote menu service, so the core can be driven by a real console, an NDJSON
stream or an in-memory script in tests.

# Key Interfaces

  - IOHandler: blocking line prompt plus a one-way log sink.
  - MenuService: lists the currently valid menu items.
*/
package ports
