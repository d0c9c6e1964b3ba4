package dto

type RecorderInfo struct {
	Name    string
	Version string
	Enabled bool
	Binary  string
	Kinds   []string
}

type DoctorResult struct {
	Name            string
	BinaryReachable bool
	ChecksumValid   bool
	LifecycleOK     bool
	Error           string
}

type CaptureInput struct {
	RecorderName string
	Kind         string
	MaxSeconds   int
}

type CaptureOutput struct {
	RecorderName  string
	Kind          string
	MIME          string
	PayloadBase64 string
}
