// Package domain define os contratos da proteção de tráfego: limite de taxa por
// cliente e limite de requisições simultâneas.
//
// Não depende de net/http nem de implementações concretas.
package domain
