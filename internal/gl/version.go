// SPDX-License-Identifier: Unlicense OR MIT

package gl

import (
	"fmt"
	"strings"
)

// ParseVersion parses the version string returned by GetString(VERSION).
// Desktop strings look like "3.3.0 NVIDIA 535.54", embedded strings like
// "OpenGL ES 3.1 Mesa", browser strings like "WebGL 2.0 (OpenGL ES 3.0)".
// WebGL versions are reported as the OpenGL ES version they correspond to.
func ParseVersion(version string) (ver [2]int, gles bool, err error) {
	switch {
	case strings.HasPrefix(version, "OpenGL ES"):
		gles = true
		_, err = fmt.Sscanf(version, "OpenGL ES %d.%d", &ver[0], &ver[1])
	case strings.HasPrefix(version, "WebGL"):
		gles = true
		_, err = fmt.Sscanf(version, "WebGL %d.%d", &ver[0], &ver[1])
		// WebGL 1.0 is OpenGL ES 2.0, WebGL 2.0 is OpenGL ES 3.0.
		ver[0]++
	default:
		_, err = fmt.Sscanf(version, "%d.%d", &ver[0], &ver[1])
	}
	if err != nil {
		return ver, gles, fmt.Errorf("gl: unrecognized version string %q", version)
	}
	return ver, gles, nil
}
