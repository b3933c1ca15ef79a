package dst

type Configuration struct {
	MaxEvents        int    `json:"max_events"`
	Verbosity        int    `json:"verbosity"`
	FileIn           string `json:"file_in"`
	FileOut          string `json:"file_out"`
	StreamOut        string `json:"stream_out"`
	RunNumber        int    `json:"run_number"`
	NoDB             bool   `json:"no_db"`
	Discard          bool   `json:"discard"`
	Skip             int    `json:"skip"`
	Host             string `json:"host"`
	User             string `json:"user"`
	Passwd           string `json:"pass"`
	DBName           string `json:"dbname"`
	NumWorkers       int    `json:"num_workers"`
	WriteData        bool   `json:"write_data"`
	WriteHits        bool   `json:"write_hits"`
	WriteKr          bool   `json:"write_kr"`
	WriteVoxels      bool   `json:"write_voxels"`
	CompressionLevel int    `json:"compression_level"`
	NPmt             int    `json:"npmt"`
	NSipm            int    `json:"nsipm"`
	PmtWL            int    `json:"pmtwl"`
	SipmWL           int    `json:"sipmwl"`
}

var configuration Configuration

func GetConfiguration() Configuration {
	return configuration
}

func SetConfiguration(config Configuration) {
	configuration = config
}
