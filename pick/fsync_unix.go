//go:build linux || darwin || freebsd || netbsd || openbsd

package pick

import "golang.org/x/sys/unix"

// syncDir flushes directory entries so renames survive a crash.
func syncDir(dir string) error {
	fd, err := unix.Open(dir, unix.O_RDONLY|unix.O_DIRECTORY|unix.O_CLOEXEC, 0)
	if err != nil {
		return err
	}
	defer unix.Close(fd)

	if err = unix.Fsync(fd); err == unix.EINVAL {
		return nil
	}
	return err
}
