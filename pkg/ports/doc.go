/*
Package ports defines the driven ports (interfaces) for the intake engine.

These interfaces decouple the core flow logic from external implementations,
allowing the engine to work with different session stores and profile
backends.

# Key Interfaces

  - StateStore: persists and loads flow Sessions (answers + position).
  - ProfileService: the external persistence service that receives the final
    submission payload.
  - DistributedLocker: distributed locking for concurrent session access
    across replicas.
*/
package ports
