package convert

import (
	"github.com/bytedance/sonic"
	"github.com/jinzhu/copier"
)

// StructAssign copies the same-named fields of src into dst
// StructAssign 把 src 与 dst 的相同字段名的值复制到 dst 中
// dst 目标结构体指针，src 源结构体
func StructAssign(src any, dst any) any {
	_ = copier.Copy(dst, src)
	return dst
}

// StructToMap converts a struct into a map via JSON round-trip
// StructToMap 借助 JSON 序列化完成结构体与 map 的互转
// param 需要被转的数据；data 转换完成后的数据，需要用引用传进来
func StructToMap(param any, data map[string]interface{}) error {
	str, err := sonic.Marshal(param)
	if err != nil {
		return err
	}
	return sonic.Unmarshal(str, &data)
}
