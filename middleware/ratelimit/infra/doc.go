// Package infra contém as implementações concretas dos contratos de domain:
//   - BucketStore: token bucket por cliente (golang.org/x/time/rate) com expiração de ociosos
//   - Semaphore: limite de concorrência baseado em channel
package infra
