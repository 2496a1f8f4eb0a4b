// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

//go:build !debug

package robdd

const _DEBUG bool = false

func (b *BDD) logTable() {}
