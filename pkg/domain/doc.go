/*
Package domain contains the core domain models of the orderbot dialog engine.
It defines the conversation state, the step and transition vocabulary, and the
error taxonomy shared by the runtime, the adapters and the CLI. This package is
kept pure and free of I/O.

# Key Entities

  - State: the conversation record (collected fields, ordered items, transcript).
  - StepID / Target: step identifiers and the Goto/Terminate routing variant.
  - Node: a read-only description of a step and its outgoing edge.
  - MenuItem: a record returned by the external validation service.
  - LifecycleHooks: callbacks for logging and metrics.
*/
package domain
