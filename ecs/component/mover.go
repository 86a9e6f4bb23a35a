package component

import "github.com/milk9111/agilearcher/movement"

var MoverComponent = NewComponent[movement.Actor]()
