package processor

import (
	"github.com/golang/snappy"
)

// CompressReport сжимает содержимое отчета перед сохранением в БД
func CompressReport(data []byte) []byte {
	return snappy.Encode(nil, data)
}

// DecompressReport распаковывает содержимое отчета
func DecompressReport(data []byte) ([]byte, error) {
	decompressed, err := snappy.Decode(nil, data)
	if err != nil {
		return nil, err
	}
	return decompressed, nil
}
