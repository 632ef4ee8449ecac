package nodes

import "github.com/legato-audio/legato"

// audioPorts builds n audio-rate ports, named stereoNames when n is two
// and baseName for every port otherwise — matching the channel-naming
// convention used throughout this inventory.
func audioPorts(n int, baseName string, stereoNames [2]string) []legato.Port {
	ports := make([]legato.Port, n)
	for i := range ports {
		name := baseName
		if n == 2 {
			name = stereoNames[i]
		}
		ports[i] = legato.Port{Name: name, Index: i, Rate: legato.Audio}
	}
	return ports
}

func audioInputs(n int) []legato.Port {
	return audioPorts(n, "in", [2]string{"l", "r"})
}

func audioOutputs(n int) []legato.Port {
	return audioPorts(n, "out", [2]string{"l", "r"})
}
