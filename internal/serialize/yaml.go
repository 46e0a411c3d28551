package serialize

import "gopkg.in/yaml.v3"

func MarshalYAML(data any) ([]byte, error) {
	return yaml.Marshal(data)
}

func UnMarshalYAML(data []byte, dest any) error {
	return yaml.Unmarshal(data, dest)
}
