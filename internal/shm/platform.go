// Package shm is the platform syscall layer backing pkg/shm.
//
// Function implementations are provided in platform-specific files
// (platform_linux.go, platform_stub.go).
package shm

// NameMax is the longest canonical segment name the platform accepts,
// including the leading separator.
const NameMax = 255

// NoFd marks a released or never-opened descriptor.
const NoFd = -1
