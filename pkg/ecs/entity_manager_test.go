package ecs

import (
	"reflect"
	"testing"
)

// 测试组件类型定义
type testSoulComponent struct {
	X, Y int
}

type testHealthComponent struct {
	Current, Max int
}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	if id1 == id2 {
		t.Error("实体ID应唯一")
	}
	if id1 != 1 {
		t.Errorf("第一个实体ID应为 1，得到 %d", id1)
	}
}

func TestGenericAddAndGet(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	AddComponent(em, id, &testSoulComponent{X: 310, Y: 304})

	soul, ok := GetComponent[*testSoulComponent](em, id)
	if !ok {
		t.Fatal("应能取回组件")
	}
	if soul.X != 310 || soul.Y != 304 {
		t.Errorf("组件数据不符: %+v", soul)
	}

	// 泛型写入与反射读取共用同一键
	if _, ok := em.GetComponent(id, reflect.TypeOf(&testSoulComponent{})); !ok {
		t.Error("反射查询应能找到泛型写入的组件")
	}

	if _, ok := GetComponent[*testHealthComponent](em, id); ok {
		t.Error("未添加的组件不应返回")
	}

	// 不存在的实体上添加组件被忽略
	AddComponent(em, 99, &testSoulComponent{})
	if _, ok := GetComponent[*testSoulComponent](em, 99); ok {
		t.Error("不存在的实体不应拥有组件")
	}
}

func TestGetEntitiesWithOrdered(t *testing.T) {
	em := NewEntityManager()

	ids := make([]EntityID, 0)
	for i := 0; i < 8; i++ {
		id := em.CreateEntity()
		AddComponent(em, id, &testSoulComponent{X: i})
		if i%2 == 0 {
			AddComponent(em, id, &testHealthComponent{Current: 20, Max: 20})
			ids = append(ids, id)
		}
	}

	got := GetEntitiesWith2[*testSoulComponent, *testHealthComponent](em)
	if !reflect.DeepEqual(got, ids) {
		t.Errorf("查询结果应按创建顺序排列: got %v, want %v", got, ids)
	}

	em.Clear()
	if n := len(GetEntitiesWith2[*testSoulComponent, *testHealthComponent](em)); n != 0 {
		t.Errorf("Clear 后不应有实体，得到 %d", n)
	}
}
