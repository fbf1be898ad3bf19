package global

import (
	"github.com/chroniclenote/chronicle-note-service/pkg/fileurl"
)

var (
	// 程序执行目录
	ROOT string
	Name string = "Chronicle Note Service"
)

func init() {

	filename := fileurl.GetExePath()
	ROOT = filename + "/"

}
