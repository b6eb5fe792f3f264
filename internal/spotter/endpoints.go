package spotter

import "strings"

const (
	DefaultBaseURL = "https://lambdaanimalspotter.vapor.cloud/api"

	SignUpEndpoint     = "/users/signup"
	SignInEndpoint     = "/users/login"
	AllAnimalsEndpoint = "/animals/all"
	AnimalEndpoint     = "/animals/{name}"
)

// GetAnimalEndpoint returns the detail path for name. The name is inserted verbatim.
func GetAnimalEndpoint(name string) string {
	return strings.Replace(AnimalEndpoint, "{name}", name, 1)
}
