package testutils

const (
	RootUrl   = "http://fakeurl:3001/api"
	ImagesUrl = "http://fakeimages:3002"
	Token     = "ya29.Gl0UBZ3"
)

var (
	SignUpUrl   = RootUrl + "/users/signup"
	LoginUrl    = RootUrl + "/users/login"
	AnimalsUrl  = RootUrl + "/animals/all"
	LionUrl     = AnimalUrl("Lion")
	LionImage   = ImagesUrl + "/lion.jpg"
	EmptyImage  = ImagesUrl + "/empty.jpg"
	AnimalNames = []string{"Lion", "Zebra", "Flamingo"}
)

// AnimalUrl returns the mocked detail URL for name.
func AnimalUrl(name string) string {
	return RootUrl + "/animals/" + name
}
